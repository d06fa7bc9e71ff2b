// Package activity keeps per-day review tallies and derives the new-card
// allowance, streaks and the heat-map from them.
package activity

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

// DailyNewCardQuota is how many new cards a user may start per calendar day.
const DailyNewCardQuota = 10

// streakWindow is how many days CurrentStreak reads per round trip.
const streakWindow = 90

// Tracker reads and writes DailyActivity records. Build one over a
// transaction's Querier to record activity atomically with a card update.
type Tracker struct {
	q stores.Querier
}

func NewTracker(q stores.Querier) *Tracker {
	return &Tracker{q: q}
}

func (t *Tracker) RemainingNewQuota(ctx context.Context, userID int64, date civil.Date) (uint32, error) {
	act, err := t.q.GetActivity(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	if act.NewCardsReviewed >= DailyNewCardQuota {
		return 0, nil
	}
	return DailyNewCardQuota - act.NewCardsReviewed, nil
}

// RecordReview counts one review on date, and one new-card introduction if
// isNew. It does not deduplicate; callers count each card at most once a day.
func (t *Tracker) RecordReview(ctx context.Context, userID int64, date civil.Date, isNew bool) error {
	return t.q.IncrementActivity(ctx, userID, date, isNew)
}

// CurrentStreak counts consecutive active days ending today, or ending
// yesterday if nothing has been reviewed yet today.
func (t *Tracker) CurrentStreak(ctx context.Context, userID int64, asOf civil.Date) (uint32, error) {
	var streak uint32
	day := asOf
	first := true
	for {
		lo := day.AddDays(-(streakWindow - 1))
		active, err := t.activeDays(ctx, userID, lo, day)
		if err != nil {
			return 0, err
		}
		if first {
			first = false
			if !active[day] {
				day = day.AddDays(-1)
				if !active[day] {
					return 0, nil
				}
			}
		}
		for ; !day.Before(lo); day = day.AddDays(-1) {
			if !active[day] {
				return streak, nil
			}
			streak++
		}
	}
}

func (t *Tracker) activeDays(ctx context.Context, userID int64, start, end civil.Date) (map[civil.Date]bool, error) {
	acts, err := t.q.ActivityRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	active := make(map[civil.Date]bool, len(acts))
	for _, a := range acts {
		if a.ReviewCount > 0 {
			active[a.Date] = true
		}
	}
	return active, nil
}

// ConsistencyMap returns the review count of every logged day in
// [start, end]. Missing days mean zero.
func (t *Tracker) ConsistencyMap(ctx context.Context, userID int64, start, end civil.Date) (map[civil.Date]uint32, error) {
	if end.Before(start) {
		return nil, srs.InvalidArgError("consistency-map", "end date is before start date")
	}
	acts, err := t.q.ActivityRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	m := make(map[civil.Date]uint32, len(acts))
	for _, a := range acts {
		m[a.Date] = a.ReviewCount
	}
	return m, nil
}
