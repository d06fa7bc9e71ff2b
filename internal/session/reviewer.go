package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/activity"
	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

// Reviewer commits ratings. A rating is always computed from the baseline
// captured when the session started, never from the live row, so revising a
// rating replaces the earlier one instead of compounding on it.
type Reviewer struct {
	Store     stores.Store
	Counter   Counter
	Scheduler srs.Scheduler
	Nower     srs.Nower
}

// Review applies rating to baseline and stores the result, provided the
// stored record is still at expectedVersion. The first committed rating of a
// card on a given day is counted as activity; revisions are not.
func (r *Reviewer) Review(ctx context.Context, baseline srs.CardSchedulingRecord, expectedVersion int64,
	rating srs.Rating) (srs.CardSchedulingRecord, error) {

	now := r.Nower.Now()
	next, err := r.Scheduler.Apply(baseline, rating, now)
	if err != nil {
		return srs.CardSchedulingRecord{}, err
	}
	// The due date and the activity day both come from this one instant.
	today := srs.DateIn(now, r.Scheduler.Location)
	userID, cardID := baseline.UserID, baseline.CardID

	var marked, counted bool
	err = r.Store.WithTx(ctx, func(q stores.Querier) error {
		// Leaving the new queue re-packs it, which must not race a reorder.
		if baseline.IsNew() {
			if err := q.LockUser(ctx, userID); err != nil {
				return err
			}
		}
		cur, err := q.GetCard(ctx, userID, cardID)
		if err != nil {
			return err
		}
		if cur.Version != expectedVersion {
			return srs.ConflictError("review", userID, cardID, expectedVersion)
		}
		version, err := q.UpdateCard(ctx, next, expectedVersion)
		if err != nil {
			return err
		}
		next.Version = version
		if cur.IsNew() {
			if _, err := q.ShiftQueue(ctx, userID, *cur.Queue+1, -1); err != nil {
				return err
			}
		}

		first, err := r.Counter.MarkCounted(ctx, userID, cardID, today)
		if err != nil {
			return err
		}
		if !first {
			return nil
		}
		marked = true
		if err := activity.NewTracker(q).RecordReview(ctx, userID, today, baseline.IsNew()); err != nil {
			return err
		}
		counted = true
		return nil
	})
	if err != nil {
		if marked {
			if uerr := r.Counter.Unmark(ctx, userID, cardID, today); uerr != nil {
				log.Ctx(ctx).Err(uerr).Str("card", cardID).Msg("unmark-counted-failed")
			}
		}
		return srs.CardSchedulingRecord{}, err
	}

	log.Ctx(ctx).Info().Int64("userID", userID).Str("card", cardID).
		Str("rating", rating.String()).
		Uint32("interval", next.IntervalDays).
		Float64("ease", next.EaseFactor).
		Bool("counted", counted).
		Str("due", next.Due.String()).Msg("card-scored")
	return next, nil
}
