package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/matryer/is"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores/sqlitestore"
)

const testUser = 42

func ctxForTests() context.Context {
	return log.Logger.WithContext(context.Background())
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := sqlitestore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewManager(store, 1000)
}

// queueState returns the user's new cards as "pos:card" strings and checks
// that positions are dense.
func queueState(t *testing.T, m *Manager, userID int64) []string {
	t.Helper()
	recs, err := m.Store.NewCards(ctxForTests(), userID, 0)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(recs))
	for i, rec := range recs {
		if rec.Queue == nil || *rec.Queue != i || rec.Due != nil {
			t.Fatalf("queue not dense at %d: %+v", i, rec)
		}
		out[i] = fmt.Sprintf("%d:%s", *rec.Queue, rec.CardID)
	}
	return out
}

func graduate(t *testing.T, m *Manager, cardID string) {
	t.Helper()
	ctx := ctxForTests()
	rec, err := m.Store.GetCard(ctx, testUser, cardID)
	if err != nil {
		t.Fatal(err)
	}
	next, err := srs.Scheduler{}.Apply(rec, srs.Good, time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Store.UpdateCard(ctx, next, rec.Version); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Store.ShiftQueue(ctx, testUser, *rec.Queue+1, -1); err != nil {
		t.Fatal(err)
	}
}

func TestEnqueueNew(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	pos, err := m.EnqueueNew(ctx, testUser)
	is.NoErr(err)
	is.Equal(pos, 0)

	res, err := m.AddCards(ctx, testUser, []string{"A", "B", "C"})
	is.NoErr(err)
	is.Equal(res.Added, []string{"A", "B", "C"})
	is.Equal(res.FirstPosition, 0)

	pos, err = m.EnqueueNew(ctx, testUser)
	is.NoErr(err)
	is.Equal(pos, 3)

	// other users are independent
	pos, err = m.EnqueueNew(ctx, testUser+1)
	is.NoErr(err)
	is.Equal(pos, 0)
}

func TestAddCardsSkipsExisting(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	_, err := m.AddCards(ctx, testUser, []string{"ADEEGMMO", "ADEEHMMO"})
	is.NoErr(err)
	res, err := m.AddCards(ctx, testUser, []string{"ADEEHMMO", "AEFFGINR", "AEFFGINR"})
	is.NoErr(err)
	is.Equal(res.Added, []string{"AEFFGINR"})
	is.Equal(res.Skipped, []string{"ADEEHMMO"})
	is.Equal(res.FirstPosition, 2)
	is.Equal(queueState(t, m, testUser), []string{"0:ADEEGMMO", "1:ADEEHMMO", "2:AEFFGINR"})
}

func TestAddCardsLimits(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	m.MaxCardsAdd = 2
	ctx := ctxForTests()

	_, err := m.AddCards(ctx, testUser, nil)
	is.True(errors.Is(err, srs.ErrInvalidArgument))
	_, err = m.AddCards(ctx, testUser, []string{"A", "B", "C"})
	is.True(errors.Is(err, srs.ErrInvalidArgument))
	_, err = m.AddCards(ctx, testUser, []string{"A", ""})
	is.True(errors.Is(err, srs.ErrInvalidArgument))
}

func TestMoveToTopPreservesRelativeOrder(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	_, err := m.AddCards(ctx, testUser, []string{"A", "B", "C", "D"})
	is.NoErr(err)

	err = m.MoveToTop(ctx, testUser, []string{"C", "A"})
	is.NoErr(err)
	is.Equal(queueState(t, m, testUser), []string{"0:A", "1:C", "2:B", "3:D"})

	err = m.MoveToTop(ctx, testUser, []string{"D"})
	is.NoErr(err)
	is.Equal(queueState(t, m, testUser), []string{"0:D", "1:A", "2:C", "3:B"})

	// moving everything is a no-op on order
	err = m.MoveToTop(ctx, testUser, []string{"B", "C", "A", "D"})
	is.NoErr(err)
	is.Equal(queueState(t, m, testUser), []string{"0:D", "1:A", "2:C", "3:B"})
}

func TestMoveToTopIsAllOrNothing(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	_, err := m.AddCards(ctx, testUser, []string{"A", "B", "C", "D"})
	is.NoErr(err)
	graduate(t, m, "B")
	before := queueState(t, m, testUser)
	is.Equal(before, []string{"0:A", "1:C", "2:D"})

	err = m.MoveToTop(ctx, testUser, []string{"D", "B", "Z"})
	is.True(errors.Is(err, srs.ErrRecordsNotFound))
	var serr *srs.Error
	is.True(errors.As(err, &serr))
	is.Equal(serr.CardIDs, []string{"B", "Z"})
	is.Equal(queueState(t, m, testUser), before)

	// B stays in review
	rec, err := m.Store.GetCard(ctx, testUser, "B")
	is.NoErr(err)
	is.True(rec.InReview())
}

func TestRemoveCardsCompactsQueue(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	_, err := m.AddCards(ctx, testUser, []string{"A", "B", "C", "D", "E"})
	is.NoErr(err)
	graduate(t, m, "E")

	n, err := m.RemoveCards(ctx, testUser, []string{"B", "D", "E", "nope"})
	is.NoErr(err)
	is.Equal(n, 3)
	is.Equal(queueState(t, m, testUser), []string{"0:A", "1:C"})

	pos, err := m.EnqueueNew(ctx, testUser)
	is.NoErr(err)
	is.Equal(pos, 2)
}

func TestDenseAfterMixedOperations(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	cards := []string{}
	for i := range 30 {
		cards = append(cards, fmt.Sprintf("card%02d", i))
	}
	_, err := m.AddCards(ctx, testUser, cards[:20])
	is.NoErr(err)
	is.NoErr(m.MoveToTop(ctx, testUser, []string{"card19", "card03", "card11"}))
	graduate(t, m, "card05")
	graduate(t, m, "card19")
	_, err = m.RemoveCards(ctx, testUser, []string{"card00", "card07"})
	is.NoErr(err)
	_, err = m.AddCards(ctx, testUser, cards[20:])
	is.NoErr(err)
	is.NoErr(m.MoveToTop(ctx, testUser, []string{"card29", "card12"}))

	state := queueState(t, m, testUser)
	is.Equal(len(state), 26)
	is.Equal(state[:4], []string{"0:card12", "1:card29", "2:card03", "3:card11"})

	// graduated cards are in review only
	due, err := m.Store.DueCards(ctx, testUser, civil.Date{Year: 2030, Month: 1, Day: 1}, 0)
	is.NoErr(err)
	is.Equal(len(due), 2)
}

func TestConcurrentAddCards(t *testing.T) {
	is := is.New(t)
	m := newTestManager(t)
	ctx := ctxForTests()

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := []string{}
			for i := range 5 {
				ids = append(ids, fmt.Sprintf("w%d-%d", w, i))
			}
			if _, err := m.AddCards(ctx, testUser, ids); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	state := queueState(t, m, testUser)
	is.Equal(len(state), 40)
	seen := map[string]bool{}
	for _, s := range state {
		seen[s] = true
	}
	is.Equal(len(seen), 40)
	ids, err := m.NewQueue(ctx, testUser)
	is.NoErr(err)
	is.Equal(len(ids), 40)
}
