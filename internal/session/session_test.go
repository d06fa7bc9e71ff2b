package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/activity"
	"github.com/domino14/srs_server/internal/queue"
	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
	"github.com/domino14/srs_server/internal/stores/sqlitestore"
)

const testUser = 7

var day = civil.Date{Year: 2024, Month: 9, Day: 22}

type FakeNower struct{ fakenow time.Time }

func (f FakeNower) Now() time.Time {
	return f.fakenow
}

func ctxForTests() context.Context {
	return log.Logger.WithContext(context.Background())
}

func newTestStore(t *testing.T) stores.Store {
	t.Helper()
	store, err := sqlitestore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestBuilder(store stores.Store) *Builder {
	return &Builder{
		Store: store,
		Nower: FakeNower{fakenow: time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC)},
	}
}

func insertReviewCard(t *testing.T, store stores.Store, cardID string, due civil.Date) {
	t.Helper()
	last := due.AddDays(-10).In(time.UTC)
	rec := srs.CardSchedulingRecord{
		UserID:         testUser,
		CardID:         cardID,
		Due:            &due,
		EaseFactor:     2.5,
		IntervalDays:   10,
		Repetitions:    3,
		LastReviewedAt: &last,
	}
	ok, err := store.InsertCard(ctxForTests(), rec)
	if err != nil || !ok {
		t.Fatalf("insert %s: %v %v", cardID, ok, err)
	}
}

func addNewCards(t *testing.T, store stores.Store, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("N%02d", i)
	}
	if _, err := queue.NewManager(store, 1000).AddCards(ctxForTests(), testUser, ids); err != nil {
		t.Fatal(err)
	}
	return ids
}

func newQueue(t *testing.T, store stores.Store) []string {
	t.Helper()
	recs, err := store.NewCards(ctxForTests(), testUser, 0)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(recs))
	for i, rec := range recs {
		if *rec.Queue != i {
			t.Fatalf("queue not dense at %d: %+v", i, rec)
		}
		out[i] = rec.CardID
	}
	return out
}

func TestBuildSessionOrder(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	ids := addNewCards(t, store, 12)
	insertReviewCard(t, store, "ZZZ", day.AddDays(-2))
	insertReviewCard(t, store, "BBB", day.AddDays(-1))
	insertReviewCard(t, store, "AAA", day.AddDays(-1))
	insertReviewCard(t, store, "CCC", day.AddDays(1))

	cards, err := b.BuildSession(ctx, testUser, day)
	is.NoErr(err)
	expected := append([]string{"ZZZ", "AAA", "BBB"}, ids[:10]...)
	is.Equal(cards, expected)

	// three new cards already studied today leave room for seven
	tr := activity.NewTracker(store)
	for range 3 {
		is.NoErr(tr.RecordReview(ctx, testUser, day, true))
	}
	cards, err = b.BuildSession(ctx, testUser, day)
	is.NoErr(err)
	expected = append([]string{"ZZZ", "AAA", "BBB"}, ids[:7]...)
	is.Equal(cards, expected)

	// the future card is included once its day comes
	cards, err = b.BuildSession(ctx, testUser, day.AddDays(1))
	is.NoErr(err)
	is.Equal(cards[:4], []string{"ZZZ", "AAA", "BBB", "CCC"})
	is.Equal(len(cards), 14)
}

func TestBuildSessionCapsNewCards(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	ids := addNewCards(t, store, 3)
	insertReviewCard(t, store, "R2", day)
	insertReviewCard(t, store, "R1", day.AddDays(-1))
	tr := activity.NewTracker(store)
	for range 8 {
		is.NoErr(tr.RecordReview(ctx, testUser, day, true))
	}

	cards, err := b.BuildSession(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(cards, []string{"R1", "R2", ids[0], ids[1]})

	// a spent quota still leaves every due card
	for range 2 {
		is.NoErr(tr.RecordReview(ctx, testUser, day, true))
	}
	cards, err = b.BuildSession(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(cards, []string{"R1", "R2"})
}

func TestBuildSessionEmpty(t *testing.T) {
	is := is.New(t)
	b := newTestBuilder(newTestStore(t))

	cards, err := b.BuildSession(ctxForTests(), testUser, day)
	is.NoErr(err)
	is.Equal(len(cards), 0)
}

func TestStartSnapshotsBaselines(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	addNewCards(t, store, 2)
	insertReviewCard(t, store, "AAA", day)

	s, err := b.Start(ctx, testUser, day)
	is.NoErr(err)
	is.True(s.ID != uuid.Nil)
	is.Equal(s.Cards, []string{"AAA", "N00", "N01"})

	base, ok := s.Baseline("N01")
	is.True(ok)
	is.True(base.IsNew())
	is.Equal(*base.Queue, 1)

	in, rated := s.Rated("N01")
	is.True(in)
	is.True(!rated)
	in, _ = s.Rated("nope")
	is.True(!in)

	_, ok = s.Baseline("nope")
	is.True(!ok)
	_, err = s.Rate(ctx, "nope", srs.Good)
	is.True(errors.Is(err, srs.ErrInvalidArgument))
}

func TestRevisedRatingReplacesEarlierOne(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	addNewCards(t, store, 3)
	insertReviewCard(t, store, "AAA", day)

	s, err := b.Start(ctx, testUser, day)
	is.NoErr(err)

	// review card: Good then revised to Hard, both from the same baseline
	rec, err := s.Rate(ctx, "AAA", srs.Good)
	is.NoErr(err)
	is.Equal(rec.IntervalDays, uint32(25))
	_, rated := s.Rated("AAA")
	is.True(rated)
	rec, err = s.Rate(ctx, "AAA", srs.Hard)
	is.NoErr(err)
	is.Equal(rec.IntervalDays, uint32(12))
	is.Equal(rec.EaseFactor, 2.35)
	is.Equal(rec.Repetitions, uint32(3))

	stored, err := store.GetCard(ctx, testUser, "AAA")
	is.NoErr(err)
	is.Equal(*stored.Due, day.AddDays(12))
	is.Equal(stored.EaseFactor, 2.35)

	// new card: Good then Easy; the queue is compacted only once
	rec, err = s.Rate(ctx, "N00", srs.Good)
	is.NoErr(err)
	is.Equal(rec.IntervalDays, uint32(1))
	is.Equal(newQueue(t, store), []string{"N01", "N02"})
	rec, err = s.Rate(ctx, "N00", srs.Easy)
	is.NoErr(err)
	is.Equal(rec.IntervalDays, uint32(4))
	is.Equal(rec.Repetitions, uint32(1))
	is.Equal(*rec.Due, day.AddDays(4))
	is.Equal(newQueue(t, store), []string{"N01", "N02"})

	act, err := store.GetActivity(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(2))
	is.Equal(act.NewCardsReviewed, uint32(1))
}

func TestRateDetectsConcurrentChange(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	insertReviewCard(t, store, "AAA", day)
	s, err := b.Start(ctx, testUser, day)
	is.NoErr(err)

	// another device reviews the card first
	other, err := b.Start(ctx, testUser, day)
	is.NoErr(err)
	_, err = other.Rate(ctx, "AAA", srs.Easy)
	is.NoErr(err)

	_, err = s.Rate(ctx, "AAA", srs.Again)
	is.True(errors.Is(err, srs.ErrConflict))

	stored, err := store.GetCard(ctx, testUser, "AAA")
	is.NoErr(err)
	is.Equal(stored.IntervalDays, uint32(32))

	act, err := store.GetActivity(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(1))
}

func TestRateWholeSessionConcurrently(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()

	addNewCards(t, store, 12)
	insertReviewCard(t, store, "AAA", day.AddDays(-3))
	insertReviewCard(t, store, "BBB", day)

	s, err := b.Start(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(len(s.Cards), 12)

	var wg sync.WaitGroup
	errs := make(chan error, len(s.Cards))
	for _, c := range s.Cards {
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			_, err := s.Rate(ctx, c, srs.Good)
			errs <- err
		}(c)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		is.NoErr(err)
	}

	is.Equal(newQueue(t, store), []string{"N10", "N11"})
	act, err := store.GetActivity(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(12))
	is.Equal(act.NewCardsReviewed, uint32(10))

	// quota spent and nothing due: the next session today is empty
	cards, err := b.BuildSession(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(len(cards), 0)
}

func TestMemoryCounter(t *testing.T) {
	is := is.New(t)
	c := NewMemoryCounter()
	ctx := context.Background()

	first, err := c.MarkCounted(ctx, testUser, "A", day)
	is.NoErr(err)
	is.True(first)
	first, err = c.MarkCounted(ctx, testUser, "A", day)
	is.NoErr(err)
	is.True(!first)
	first, err = c.MarkCounted(ctx, testUser, "A", day.AddDays(1))
	is.NoErr(err)
	is.True(first)

	is.NoErr(c.Unmark(ctx, testUser, "A", day))
	first, err = c.MarkCounted(ctx, testUser, "A", day)
	is.NoErr(err)
	is.True(first)
}

func TestRegistry(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	b := newTestBuilder(store)
	ctx := ctxForTests()
	insertReviewCard(t, store, "AAA", day)

	reg := NewRegistry()
	old, err := b.Start(ctx, testUser, day.AddDays(-2))
	is.NoErr(err)
	reg.Add(old)
	s, err := b.Start(ctx, testUser, day)
	is.NoErr(err)
	reg.Add(s)
	is.Equal(reg.Len(), 1)

	got, ok := reg.Get(s.ID, testUser)
	is.True(ok)
	is.Equal(got, s)
	_, ok = reg.Get(s.ID, testUser+1)
	is.True(!ok)
	_, ok = reg.Get(old.ID, testUser)
	is.True(!ok)
}

func TestMemoryCounterKeepsTwoDays(t *testing.T) {
	is := is.New(t)
	c := NewMemoryCounter()
	ctx := context.Background()

	for i, card := range []string{"A", "B", "C", "D"} {
		first, err := c.MarkCounted(ctx, testUser, card, day.AddDays(i))
		is.NoErr(err)
		is.True(first)
	}
	is.Equal(len(c.days), 2)
	_, ok := c.days[day.AddDays(2)]
	is.True(ok)
	_, ok = c.days[day.AddDays(3)]
	is.True(ok)

	is.NoErr(c.Unmark(ctx, testUser, "C", day.AddDays(2)))
	is.Equal(len(c.days), 1)
}

// tickingNower advances by step on every call.
type tickingNower struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (n *tickingNower) Now() time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()
	t := n.now
	n.now = n.now.Add(n.step)
	return t
}

func TestReviewAtMidnightUsesOneDay(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	ctx := ctxForTests()
	addNewCards(t, store, 1)

	r := &Reviewer{
		Store:   store,
		Counter: NewMemoryCounter(),
		Nower: &tickingNower{
			now:  time.Date(2024, 9, 22, 23, 59, 59, 0, time.UTC),
			step: 2 * time.Second,
		},
	}
	base, err := store.GetCard(ctx, testUser, "N00")
	is.NoErr(err)
	rec, err := r.Review(ctx, base, base.Version, srs.Good)
	is.NoErr(err)
	is.Equal(*rec.Due, day.AddDays(1))

	act, err := store.GetActivity(ctx, testUser, day)
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(1))
	is.Equal(act.NewCardsReviewed, uint32(1))
	act, err = store.GetActivity(ctx, testUser, day.AddDays(1))
	is.NoErr(err)
	is.Equal(act.ReviewCount, uint32(0))
}

func TestRedisCounter(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	is := is.New(t)
	ctx := context.Background()
	c, err := NewRedisCounter(ctx, url)
	is.NoErr(err)
	defer c.Close()

	userID := time.Now().UnixNano()
	card := uuid.NewString()
	first, err := c.MarkCounted(ctx, userID, card, day)
	is.NoErr(err)
	is.True(first)
	first, err = c.MarkCounted(ctx, userID, card, day)
	is.NoErr(err)
	is.True(!first)
	is.NoErr(c.Unmark(ctx, userID, card, day))
	first, err = c.MarkCounted(ctx, userID, card, day)
	is.NoErr(err)
	is.True(first)
	is.NoErr(c.Unmark(ctx, userID, card, day))
}
