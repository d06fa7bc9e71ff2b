package activity

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores/sqlitestore"
)

var day = civil.Date{Year: 2024, Month: 9, Day: 22}

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store, err := sqlitestore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewTracker(store)
}

func review(t *testing.T, tr *Tracker, userID int64, d civil.Date, n int, isNew bool) {
	t.Helper()
	for range n {
		if err := tr.RecordReview(context.Background(), userID, d, isNew); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRemainingNewQuota(t *testing.T) {
	is := is.New(t)
	tr := newTestTracker(t)
	ctx := context.Background()

	left, err := tr.RemainingNewQuota(ctx, 1, day)
	is.NoErr(err)
	is.Equal(left, uint32(10))

	review(t, tr, 1, day, 3, true)
	review(t, tr, 1, day, 5, false)
	left, err = tr.RemainingNewQuota(ctx, 1, day)
	is.NoErr(err)
	is.Equal(left, uint32(7))

	review(t, tr, 1, day, 9, true)
	left, err = tr.RemainingNewQuota(ctx, 1, day)
	is.NoErr(err)
	is.Equal(left, uint32(0))

	// the quota is per day
	left, err = tr.RemainingNewQuota(ctx, 1, day.AddDays(1))
	is.NoErr(err)
	is.Equal(left, uint32(10))
}

func TestRecordReviewCounts(t *testing.T) {
	is := is.New(t)
	tr := newTestTracker(t)
	ctx := context.Background()

	review(t, tr, 1, day, 2, true)
	review(t, tr, 1, day, 4, false)
	act, err := tr.q.GetActivity(ctx, 1, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(6))
	is.Equal(act.NewCardsReviewed, uint32(2))
}

func TestCurrentStreak(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		active []int // offsets from day
		want   uint32
	}{
		{"nothing", nil, 0},
		{"today only", []int{0}, 1},
		{"yesterday keeps it alive", []int{-2, -1}, 2},
		{"three in a row", []int{-2, -1, 0}, 3},
		{"stale activity", []int{-5, -4, -3, -2}, 0},
		{"gap stops the walk", []int{-6, -5, -3, -2, -1, 0}, 4},
		{"future activity ignored", []int{1, 2}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTracker(t)
			for _, off := range tc.active {
				review(t, tr, 7, day.AddDays(off), 1, false)
			}
			// another user's activity never counts
			review(t, tr, 8, day, 1, false)
			got, err := tr.CurrentStreak(ctx, 7, day)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLongStreakSpansWindows(t *testing.T) {
	is := is.New(t)
	tr := newTestTracker(t)
	for off := range 200 {
		review(t, tr, 7, day.AddDays(-off-1), 1, false)
	}
	got, err := tr.CurrentStreak(context.Background(), 7, day)
	is.NoErr(err)
	is.Equal(got, uint32(200))
}

func TestConsistencyMap(t *testing.T) {
	is := is.New(t)
	tr := newTestTracker(t)
	ctx := context.Background()

	review(t, tr, 1, day, 4, false)
	review(t, tr, 1, day.AddDays(-3), 2, true)
	review(t, tr, 1, day.AddDays(-40), 1, false)

	m, err := tr.ConsistencyMap(ctx, 1, day.AddDays(-30), day)
	is.NoErr(err)
	is.Equal(m, map[civil.Date]uint32{
		day:             4,
		day.AddDays(-3): 2,
	})

	_, err = tr.ConsistencyMap(ctx, 1, day, day.AddDays(-1))
	is.True(errors.Is(err, srs.ErrInvalidArgument))
}
