// Package storetest holds behaviour tests every stores.Store implementation
// must pass.
package storetest

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/matryer/is"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

var day = civil.Date{Year: 2024, Month: 9, Day: 22}

func reviewCard(userID int64, cardID string, due civil.Date) srs.CardSchedulingRecord {
	reviewed := time.Date(2024, 9, 12, 8, 30, 0, 0, time.UTC)
	return srs.CardSchedulingRecord{
		UserID:         userID,
		CardID:         cardID,
		Due:            &due,
		EaseFactor:     2.2,
		IntervalDays:   10,
		Repetitions:    4,
		LastReviewedAt: &reviewed,
	}
}

func insert(t *testing.T, s stores.Store, recs ...srs.CardSchedulingRecord) {
	t.Helper()
	for _, rec := range recs {
		ok, err := s.InsertCard(context.Background(), rec)
		if err != nil || !ok {
			t.Fatalf("insert %s: %v %v", rec.CardID, ok, err)
		}
	}
}

func cardIDs(recs []srs.CardSchedulingRecord) []string {
	ids := make([]string, len(recs))
	for i := range recs {
		ids[i] = recs[i].CardID
	}
	return ids
}

// Run exercises s. Each subtest works on its own user IDs starting at
// baseUser so that the suite can share one database.
func Run(t *testing.T, s stores.Store, baseUser int64) {
	t.Run("CardCRUD", func(t *testing.T) { testCardCRUD(t, s, baseUser) })
	t.Run("UpdateVersioning", func(t *testing.T) { testUpdateVersioning(t, s, baseUser+1) })
	t.Run("RegimeConstraint", func(t *testing.T) { testRegimeConstraint(t, s, baseUser+2) })
	t.Run("Ordering", func(t *testing.T) { testOrdering(t, s, baseUser+3) })
	t.Run("QueueOps", func(t *testing.T) { testQueueOps(t, s, baseUser+4) })
	t.Run("Activity", func(t *testing.T) { testActivity(t, s, baseUser+5) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, s, baseUser+6) })
}

func testCardCRUD(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()

	rv := reviewCard(user, "REVIEW", day)
	insert(t, s, srs.NewCardRecord(user, "NEW", 0), rv)

	ok, err := s.InsertCard(ctx, srs.NewCardRecord(user, "NEW", 1))
	is.NoErr(err)
	is.True(!ok) // already exists

	got, err := s.GetCard(ctx, user, "NEW")
	is.NoErr(err)
	is.True(got.IsNew())
	is.Equal(*got.Queue, 0)
	is.Equal(got.EaseFactor, srs.DefaultEaseFactor)
	is.Equal(got.Version, int64(1))
	is.True(got.LastReviewedAt == nil)

	got, err = s.GetCard(ctx, user, "REVIEW")
	is.NoErr(err)
	is.True(got.InReview())
	is.Equal(*got.Due, day)
	is.Equal(got.EaseFactor, 2.2)
	is.Equal(got.IntervalDays, uint32(10))
	is.Equal(got.Repetitions, uint32(4))
	is.True(got.LastReviewedAt.Equal(*rv.LastReviewedAt))

	_, err = s.GetCard(ctx, user, "MISSING")
	is.True(errors.Is(err, srs.ErrNotFound))
	_, err = s.GetCard(ctx, user+1000, "NEW")
	is.True(errors.Is(err, srs.ErrNotFound))

	recs, err := s.GetCards(ctx, user, []string{"REVIEW", "MISSING", "NEW"})
	is.NoErr(err)
	ids := cardIDs(recs)
	sort.Strings(ids)
	is.Equal(ids, []string{"NEW", "REVIEW"})

	deleted, err := s.DeleteCards(ctx, user, []string{"NEW", "MISSING"})
	is.NoErr(err)
	is.Equal(cardIDs(deleted), []string{"NEW"})
	is.Equal(*deleted[0].Queue, 0)
	_, err = s.GetCard(ctx, user, "NEW")
	is.True(errors.Is(err, srs.ErrNotFound))
}

func testUpdateVersioning(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()
	insert(t, s, srs.NewCardRecord(user, "A", 0))

	next := reviewCard(user, "A", day.AddDays(1))
	v, err := s.UpdateCard(ctx, next, 1)
	is.NoErr(err)
	is.Equal(v, int64(2))

	_, err = s.UpdateCard(ctx, next, 1)
	is.True(errors.Is(err, srs.ErrConflict))

	got, err := s.GetCard(ctx, user, "A")
	is.NoErr(err)
	is.Equal(got.Version, int64(2))
	is.True(got.InReview())
	is.Equal(*got.Due, day.AddDays(1))

	_, err = s.UpdateCard(ctx, reviewCard(user, "GHOST", day), 1)
	is.True(errors.Is(err, srs.ErrNotFound))
}

func testRegimeConstraint(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()

	both := reviewCard(user, "BOTH", day)
	pos := 0
	both.Queue = &pos
	_, err := s.InsertCard(ctx, both)
	is.True(errors.Is(err, srs.ErrCorruptState))

	neither := reviewCard(user, "NEITHER", day)
	neither.Due = nil
	_, err = s.InsertCard(ctx, neither)
	is.True(errors.Is(err, srs.ErrCorruptState))

	_, err = s.GetCard(ctx, user, "BOTH")
	is.True(errors.Is(err, srs.ErrNotFound))
}

func testOrdering(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()

	insert(t, s,
		srs.NewCardRecord(user, "N2", 2),
		srs.NewCardRecord(user, "N0", 0),
		srs.NewCardRecord(user, "N1", 1),
		reviewCard(user, "R-late", day.AddDays(3)),
		reviewCard(user, "R-b", day),
		reviewCard(user, "R-a", day),
		reviewCard(user, "R-old", day.AddDays(-5)),
	)

	recs, err := s.NewCards(ctx, user, 0)
	is.NoErr(err)
	is.Equal(cardIDs(recs), []string{"N0", "N1", "N2"})
	recs, err = s.NewCards(ctx, user, 2)
	is.NoErr(err)
	is.Equal(cardIDs(recs), []string{"N0", "N1"})

	recs, err = s.DueCards(ctx, user, day, 0)
	is.NoErr(err)
	is.Equal(cardIDs(recs), []string{"R-old", "R-a", "R-b"})
	recs, err = s.DueCards(ctx, user, day, 1)
	is.NoErr(err)
	is.Equal(cardIDs(recs), []string{"R-old"})

	n, err := s.CountDue(ctx, user, day)
	is.NoErr(err)
	is.Equal(n, 3)
	n, err = s.CountDue(ctx, user, day.AddDays(3))
	is.NoErr(err)
	is.Equal(n, 4)

	pos, ok, err := s.MaxQueuePosition(ctx, user)
	is.NoErr(err)
	is.True(ok)
	is.Equal(pos, 2)
	_, ok, err = s.MaxQueuePosition(ctx, user+1000)
	is.NoErr(err)
	is.True(!ok)
}

func testQueueOps(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()

	insert(t, s,
		srs.NewCardRecord(user, "A", 0),
		srs.NewCardRecord(user, "B", 1),
		srs.NewCardRecord(user, "C", 2),
		reviewCard(user, "R", day),
	)

	ok, err := s.SetQueuePosition(ctx, user, "R", 3)
	is.NoErr(err)
	is.True(!ok) // review cards have no position
	ok, err = s.SetQueuePosition(ctx, user, "MISSING", 3)
	is.NoErr(err)
	is.True(!ok)

	err = s.WithTx(ctx, func(q stores.Querier) error {
		if err := q.LockUser(ctx, user); err != nil {
			return err
		}
		// A to the back: close the gap, then place it
		if _, err := q.SetQueuePosition(ctx, user, "A", -1); err != nil {
			return err
		}
		n, err := q.ShiftQueue(ctx, user, 1, -1)
		if err != nil {
			return err
		}
		if n != 2 {
			t.Errorf("shifted %d cards, expected 2", n)
		}
		_, err = q.SetQueuePosition(ctx, user, "A", 2)
		return err
	})
	is.NoErr(err)

	recs, err := s.NewCards(ctx, user, 0)
	is.NoErr(err)
	is.Equal(cardIDs(recs), []string{"B", "C", "A"})

	// positions moved without a rating keep their version
	got, err := s.GetCard(ctx, user, "B")
	is.NoErr(err)
	is.Equal(*got.Queue, 0)
	is.Equal(got.Version, int64(1))
}

func testActivity(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()

	act, err := s.GetActivity(ctx, user, day)
	is.NoErr(err)
	is.Equal(act, srs.DailyActivity{UserID: user, Date: day})

	is.NoErr(s.IncrementActivity(ctx, user, day, true))
	is.NoErr(s.IncrementActivity(ctx, user, day, false))
	is.NoErr(s.IncrementActivity(ctx, user, day.AddDays(-2), false))
	is.NoErr(s.IncrementActivity(ctx, user, day.AddDays(-10), false))

	act, err = s.GetActivity(ctx, user, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(2))
	is.Equal(act.NewCardsReviewed, uint32(1))

	acts, err := s.ActivityRange(ctx, user, day.AddDays(-2), day)
	is.NoErr(err)
	is.Equal(len(acts), 2)
	is.Equal(acts[0].Date, day.AddDays(-2))
	is.Equal(acts[0].ReviewCount, uint32(1))
	is.Equal(acts[1].Date, day)
	is.Equal(acts[1].UserID, user)

	acts, err = s.ActivityRange(ctx, user+1000, day.AddDays(-30), day)
	is.NoErr(err)
	is.Equal(len(acts), 0)
}

func testTxRollback(t *testing.T, s stores.Store, user int64) {
	is := is.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(q stores.Querier) error {
		if _, err := q.InsertCard(ctx, srs.NewCardRecord(user, "A", 0)); err != nil {
			return err
		}
		if err := q.IncrementActivity(ctx, user, day, true); err != nil {
			return err
		}
		return boom
	})
	is.True(errors.Is(err, boom))

	_, err = s.GetCard(ctx, user, "A")
	is.True(errors.Is(err, srs.ErrNotFound))
	act, err := s.GetActivity(ctx, user, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(0))
}
