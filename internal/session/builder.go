// Package session assembles study sessions and commits the ratings given
// during them.
package session

import (
	"context"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/activity"
	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

type Builder struct {
	Store     stores.Store
	Scheduler srs.Scheduler
	Nower     srs.Nower
	// Counter, if set, is shared by every session. Otherwise each session
	// dedupes with its own MemoryCounter.
	Counter Counter
}

func NewBuilder(store stores.Store, scheduler srs.Scheduler, counter Counter) *Builder {
	return &Builder{Store: store, Scheduler: scheduler, Nower: srs.RealNower{}, Counter: counter}
}

// BuildSession lists the cards to study on asOf: every review card that is
// due, oldest due date first, followed by as many new cards, in queue order,
// as the day's new-card allowance permits.
func (b *Builder) BuildSession(ctx context.Context, userID int64, asOf civil.Date) ([]string, error) {
	recs, err := b.sessionCards(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(recs))
	for i := range recs {
		ids[i] = recs[i].CardID
	}
	return ids, nil
}

func (b *Builder) sessionCards(ctx context.Context, userID int64, asOf civil.Date) ([]srs.CardSchedulingRecord, error) {
	due, err := b.Store.DueCards(ctx, userID, asOf, 0)
	if err != nil {
		return nil, err
	}
	remaining, err := activity.NewTracker(b.Store).RemainingNewQuota(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	var fresh []srs.CardSchedulingRecord
	if remaining > 0 {
		fresh, err = b.Store.NewCards(ctx, userID, int(remaining))
		if err != nil {
			return nil, err
		}
	}
	log.Ctx(ctx).Debug().Int64("userID", userID).Int("due", len(due)).Int("new", len(fresh)).
		Uint32("remaining-new", remaining).Msg("session-built")
	return append(due, fresh...), nil
}

// Start builds a session for asOf and snapshots every listed card as the
// baseline its ratings are computed from.
func (b *Builder) Start(ctx context.Context, userID int64, asOf civil.Date) (*Session, error) {
	recs, err := b.sessionCards(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	counter := b.Counter
	if counter == nil {
		counter = NewMemoryCounter()
	}
	nower := b.Nower
	if nower == nil {
		nower = srs.RealNower{}
	}
	s := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      asOf,
		Cards:     make([]string, len(recs)),
		baselines: make(map[string]srs.CardSchedulingRecord, len(recs)),
		versions:  make(map[string]int64, len(recs)),
		rated:     map[string]bool{},
		reviewer: &Reviewer{
			Store:     b.Store,
			Counter:   counter,
			Scheduler: b.Scheduler,
			Nower:     nower,
		},
	}
	for i, rec := range recs {
		s.Cards[i] = rec.CardID
		s.baselines[rec.CardID] = rec.Clone()
		s.versions[rec.CardID] = rec.Version
	}
	log.Ctx(ctx).Info().Str("session", s.ID.String()).Int64("userID", userID).
		Int("cards", len(s.Cards)).Msg("session-started")
	return s, nil
}

// Session is one sitting of study. It is safe for concurrent use.
type Session struct {
	ID     uuid.UUID
	UserID int64
	Date   civil.Date
	// Cards is the ordered card list handed to the user.
	Cards []string

	mu        sync.Mutex
	baselines map[string]srs.CardSchedulingRecord
	versions  map[string]int64
	rated     map[string]bool
	reviewer  *Reviewer
}

// Baseline returns the snapshot of cardID taken when the session started.
func (s *Session) Baseline(cardID string) (srs.CardSchedulingRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.baselines[cardID]
	return b.Clone(), ok
}

// Rate commits rating for cardID. Calling it again for the same card
// replaces the earlier rating: both are computed from the same baseline.
func (s *Session) Rate(ctx context.Context, cardID string, rating srs.Rating) (srs.CardSchedulingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base, ok := s.baselines[cardID]
	if !ok {
		return srs.CardSchedulingRecord{}, &srs.Error{Kind: srs.InvalidArgument, Op: "rate",
			UserID: s.UserID, CardIDs: []string{cardID}}
	}
	next, err := s.reviewer.Review(ctx, base, s.versions[cardID], rating)
	if err != nil {
		return srs.CardSchedulingRecord{}, err
	}
	s.versions[cardID] = next.Version
	s.rated[cardID] = true
	return next, nil
}

// Rated reports whether cardID is part of the session and whether it has
// been rated in it yet.
func (s *Session) Rated(cardID string) (inSession, rated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, inSession = s.baselines[cardID]
	return inSession, s.rated[cardID]
}
