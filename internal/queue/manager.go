// Package queue maintains the per-user ordering of new (never reviewed)
// cards. Positions for a user are always exactly 0..k-1.
package queue

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

type Manager struct {
	Store stores.Store
	// MaxCardsAdd bounds a single AddCards call. Zero means unbounded.
	MaxCardsAdd int
}

func NewManager(store stores.Store, maxCardsAdd int) *Manager {
	return &Manager{Store: store, MaxCardsAdd: maxCardsAdd}
}

// AddResult reports which cards were created by AddCards.
type AddResult struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"`
	// FirstPosition is the queue position of Added[0].
	FirstPosition int `json:"first_position"`
}

// EnqueueNew returns the position the next new card for the user would get:
// one past the current maximum, or 0 for an empty queue.
func (m *Manager) EnqueueNew(ctx context.Context, userID int64) (int, error) {
	return nextPosition(ctx, m.Store, userID)
}

func nextPosition(ctx context.Context, q stores.Querier, userID int64) (int, error) {
	pos, ok, err := q.MaxQueuePosition(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return pos + 1, nil
}

// AddCards creates new-regime records for cardIDs at the end of the user's
// queue, in the order given. Cards the user already has are skipped.
func (m *Manager) AddCards(ctx context.Context, userID int64, cardIDs []string) (AddResult, error) {
	ids, err := cleanIDs("add-cards", cardIDs)
	if err != nil {
		return AddResult{}, err
	}
	if m.MaxCardsAdd > 0 && len(ids) > m.MaxCardsAdd {
		return AddResult{}, srs.InvalidArgError("add-cards",
			fmt.Sprintf("cannot add more than %d cards at a time", m.MaxCardsAdd))
	}

	var res AddResult
	err = m.Store.WithTx(ctx, func(q stores.Querier) error {
		res = AddResult{}
		// Read-max-then-insert must not interleave with another writer for
		// this user.
		if err := q.LockUser(ctx, userID); err != nil {
			return err
		}
		pos, err := nextPosition(ctx, q, userID)
		if err != nil {
			return err
		}
		res.FirstPosition = pos
		for _, id := range ids {
			inserted, err := q.InsertCard(ctx, srs.NewCardRecord(userID, id, pos))
			if err != nil {
				return err
			}
			if !inserted {
				res.Skipped = append(res.Skipped, id)
				continue
			}
			res.Added = append(res.Added, id)
			pos++
		}
		return nil
	})
	if err != nil {
		return AddResult{}, err
	}
	log.Ctx(ctx).Info().Int64("userID", userID).Int("added", len(res.Added)).
		Int("skipped", len(res.Skipped)).Msg("cards-added")
	return res, nil
}

// sentinel is an out-of-range queue value that remembers a card's rank
// among the cards being moved.
func sentinel(rank int) int {
	return -1 - rank
}

// MoveToTop puts cardIDs at positions 0..k-1, keeping their current relative
// order, and pushes every other new card down behind them. Every card must
// currently be new for this user; otherwise nothing changes and the error is
// srs.RecordsNotFound.
func (m *Manager) MoveToTop(ctx context.Context, userID int64, cardIDs []string) error {
	ids, err := cleanIDs("move-to-top", cardIDs)
	if err != nil {
		return err
	}
	notNew := func(missing []string) error {
		return &srs.Error{Kind: srs.RecordsNotFound, Op: "move-to-top", UserID: userID, CardIDs: missing}
	}

	err = m.Store.WithTx(ctx, func(q stores.Querier) error {
		if err := q.LockUser(ctx, userID); err != nil {
			return err
		}
		recs, err := q.GetCards(ctx, userID, ids)
		if err != nil {
			return err
		}
		found := make(map[string]bool, len(recs))
		moving := make([]srs.CardSchedulingRecord, 0, len(recs))
		for _, rec := range recs {
			if rec.IsNew() {
				found[rec.CardID] = true
				moving = append(moving, rec)
			}
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return notNew(missing)
		}
		sort.SliceStable(moving, func(i, j int) bool {
			return *moving[i].Queue < *moving[j].Queue
		})
		k := len(moving)

		// 1. Tag the moving cards with sentinels.
		for i, rec := range moving {
			ok, err := q.SetQueuePosition(ctx, userID, rec.CardID, sentinel(i))
			if err != nil {
				return err
			}
			if !ok {
				return notNew([]string{rec.CardID})
			}
		}
		// 2. Make room at the top.
		if _, err := q.ShiftQueue(ctx, userID, 0, k); err != nil {
			return err
		}
		// 3. Close the holes the moving cards left behind.
		rest, err := q.NewCards(ctx, userID, 0)
		if err != nil {
			return err
		}
		pos := k
		for _, rec := range rest {
			if *rec.Queue < 0 {
				continue
			}
			if *rec.Queue != pos {
				if _, err := q.SetQueuePosition(ctx, userID, rec.CardID, pos); err != nil {
					return err
				}
			}
			pos++
		}
		// 4. Untag into 0..k-1.
		for i, rec := range moving {
			if _, err := q.SetQueuePosition(ctx, userID, rec.CardID, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Ctx(ctx).Err(err).Int64("userID", userID).Msg("move-to-top-failed")
		return err
	}
	log.Ctx(ctx).Info().Int64("userID", userID).Int("moved", len(ids)).Msg("cards-moved-to-top")
	return nil
}

// RemoveCards deletes the user's records for cardIDs and re-packs the new
// queue. It returns how many records were deleted.
func (m *Manager) RemoveCards(ctx context.Context, userID int64, cardIDs []string) (int, error) {
	ids, err := cleanIDs("remove-cards", cardIDs)
	if err != nil {
		return 0, err
	}
	var n int
	err = m.Store.WithTx(ctx, func(q stores.Querier) error {
		if err := q.LockUser(ctx, userID); err != nil {
			return err
		}
		deleted, err := q.DeleteCards(ctx, userID, ids)
		if err != nil {
			return err
		}
		n = len(deleted)
		for _, rec := range deleted {
			if rec.IsNew() {
				return compact(ctx, q, userID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Ctx(ctx).Info().Int64("userID", userID).Int("deleted", n).Msg("cards-removed")
	return n, nil
}

// NewQueue lists the user's new cards in queue order.
func (m *Manager) NewQueue(ctx context.Context, userID int64) ([]string, error) {
	recs, err := m.Store.NewCards(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(recs))
	for i := range recs {
		ids[i] = recs[i].CardID
	}
	return ids, nil
}

// compact renumbers the user's new cards to 0..k-1 in their current order.
func compact(ctx context.Context, q stores.Querier, userID int64) error {
	recs, err := q.NewCards(ctx, userID, 0)
	if err != nil {
		return err
	}
	for i, rec := range recs {
		if *rec.Queue == i {
			continue
		}
		if _, err := q.SetQueuePosition(ctx, userID, rec.CardID, i); err != nil {
			return err
		}
	}
	return nil
}

// cleanIDs drops duplicates while keeping first-seen order.
func cleanIDs(op string, cardIDs []string) ([]string, error) {
	if len(cardIDs) == 0 {
		return nil, srs.InvalidArgError(op, "need at least one card")
	}
	seen := make(map[string]bool, len(cardIDs))
	ids := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		if id == "" {
			return nil, srs.InvalidArgError(op, "card id cannot be empty")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
