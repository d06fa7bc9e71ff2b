package srs

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/matryer/is"
)

var t0 = time.Date(2024, 9, 22, 23, 0, 0, 0, time.UTC)

func reviewRecord(ease float64, ivl, reps uint32, due civil.Date) CardSchedulingRecord {
	return CardSchedulingRecord{
		UserID:       42,
		CardID:       "ADEEGMMO",
		Due:          &due,
		EaseFactor:   ease,
		IntervalDays: ivl,
		Repetitions:  reps,
		Version:      3,
	}
}

func TestNewCardAgain(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	card := NewCardRecord(42, "ADEEGMMO", 0)

	next, err := s.Apply(card, Again, t0)
	is.NoErr(err)
	is.Equal(next.Queue, nil)
	is.Equal(*next.Due, civil.Date{Year: 2024, Month: 9, Day: 23})
	is.Equal(next.EaseFactor, 2.3)
	is.Equal(next.IntervalDays, uint32(1))
	is.Equal(next.Repetitions, uint32(0))
	is.Equal(*next.LastReviewedAt, t0)
	// input untouched
	is.Equal(*card.Queue, 0)
	is.Equal(card.Due, nil)
}

func TestFirstReviewIntervals(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	card := NewCardRecord(42, "ADEEGMMO", 3)

	good, err := s.Apply(card, Good, t0)
	is.NoErr(err)
	is.Equal(good.IntervalDays, uint32(1))
	is.Equal(good.Repetitions, uint32(1))
	is.Equal(good.EaseFactor, 2.5)

	easy, err := s.Apply(card, Easy, t0)
	is.NoErr(err)
	is.Equal(easy.IntervalDays, uint32(4))
	is.Equal(*easy.Due, civil.Date{Year: 2024, Month: 9, Day: 26})

	// Hard on a brand-new card multiplies a zero interval and clamps to 1.
	hard, err := s.Apply(card, Hard, t0)
	is.NoErr(err)
	is.Equal(hard.IntervalDays, uint32(1))
	is.Equal(hard.EaseFactor, 2.35)
	is.Equal(hard.Repetitions, uint32(0))
}

func TestReviewIntervals(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	today := civil.DateOf(t0)

	card := reviewRecord(2.5, 10, 3, today)
	good, err := s.Apply(card, Good, t0)
	is.NoErr(err)
	is.Equal(good.IntervalDays, uint32(25))
	is.Equal(*good.Due, today.AddDays(25))
	is.Equal(good.Repetitions, uint32(4))

	easy, err := s.Apply(card, Easy, t0)
	is.NoErr(err)
	is.Equal(easy.IntervalDays, uint32(32)) // floor(10 * 2.5 * 1.3)

	hard, err := s.Apply(card, Hard, t0)
	is.NoErr(err)
	is.Equal(hard.IntervalDays, uint32(12))
	is.Equal(hard.Repetitions, uint32(3))
	is.Equal(hard.EaseFactor, 2.35)

	again, err := s.Apply(card, Again, t0)
	is.NoErr(err)
	is.Equal(again.IntervalDays, uint32(1))
	is.Equal(again.Repetitions, uint32(0))
	is.Equal(again.EaseFactor, 2.3)
}

func TestAgainThenGoodIsNotFirstReview(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	card := NewCardRecord(42, "AEFFGINR", 0)

	card, err := s.Apply(card, Good, t0)
	is.NoErr(err)
	card, err = s.Apply(card, Again, t0.Add(24*time.Hour))
	is.NoErr(err)
	is.Equal(card.Repetitions, uint32(0))

	// Repetitions is zero again but the card is in review, so Easy uses the
	// multiplicative branch rather than the first-review interval of 4.
	card, err = s.Apply(card, Easy, t0.Add(48*time.Hour))
	is.NoErr(err)
	is.Equal(card.EaseFactor, 2.45)
	is.Equal(card.IntervalDays, uint32(2)) // floor(1 * 2.3 * 1.3)
}

func TestEaseStaysInBounds(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := 0; trial < 50; trial++ {
		card := NewCardRecord(1, "card", 0)
		now := t0
		for i := 0; i < 200; i++ {
			r := Rating(rng.IntN(4) + 1)
			next, err := s.Apply(card, r, now)
			is.NoErr(err)
			is.True(next.EaseFactor >= MinEaseFactor && next.EaseFactor <= MaxEaseFactor)
			is.True(next.IntervalDays >= 1)
			is.True((next.Queue == nil) != (next.Due == nil))
			card = next
			now = now.Add(time.Duration(next.IntervalDays) * 24 * time.Hour)
		}
	}
}

func TestOffGridEaseIsNotRounded(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	card := reviewRecord(2.375, 10, 3, civil.DateOf(t0))

	hard, err := s.Apply(card, Hard, t0)
	is.NoErr(err)
	is.Equal(hard.EaseFactor, 2.225)

	again, err := s.Apply(card, Again, t0)
	is.NoErr(err)
	is.Equal(again.EaseFactor, 2.175)

	good, err := s.Apply(card, Good, t0)
	is.NoErr(err)
	is.Equal(good.EaseFactor, 2.5)
	is.Equal(good.IntervalDays, uint32(23)) // floor(10 * 2.375)
}

func TestBaselineReplayIsIdempotent(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	baseline := reviewRecord(2.2, 7, 2, civil.DateOf(t0))

	for _, r := range []Rating{Again, Hard, Good, Easy} {
		first, err := s.Apply(baseline, r, t0)
		is.NoErr(err)
		second, err := s.Apply(baseline, r, t0)
		is.NoErr(err)
		is.Equal(first, second)
	}
	is.Equal(baseline.IntervalDays, uint32(7))
}

func TestIntervalIsCapped(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}
	card := reviewRecord(2.5, 30000, 9, civil.DateOf(t0))
	next, err := s.Apply(card, Easy, t0)
	is.NoErr(err)
	is.Equal(next.IntervalDays, uint32(MaxIntervalDays))
}

func TestDueDateUsesLocation(t *testing.T) {
	is := is.New(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	is.NoErr(err)
	// 23:00 UTC on the 22nd is already the 23rd in Tokyo.
	next, err := Scheduler{Location: tokyo}.Apply(NewCardRecord(1, "c", 0), Good, t0)
	is.NoErr(err)
	is.Equal(*next.Due, civil.Date{Year: 2024, Month: 9, Day: 24})
}

func TestDateIn(t *testing.T) {
	is := is.New(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	is.NoErr(err)
	is.Equal(DateIn(t0, nil), civil.Date{Year: 2024, Month: 9, Day: 22})
	is.Equal(DateIn(t0, tokyo), civil.Date{Year: 2024, Month: 9, Day: 23})
}

func TestApplyErrors(t *testing.T) {
	is := is.New(t)
	s := Scheduler{}

	_, err := s.Apply(NewCardRecord(1, "c", 0), Rating(17), t0)
	is.True(errors.Is(err, ErrInvalidRating))
	_, err = s.Apply(NewCardRecord(1, "c", 0), Rating(0), t0)
	is.Equal(KindOf(err), InvalidRating)

	neither := CardSchedulingRecord{UserID: 1, CardID: "c", EaseFactor: 2.5}
	_, err = s.Apply(neither, Good, t0)
	is.True(errors.Is(err, ErrCorruptState))

	both := NewCardRecord(1, "c", 0)
	d := civil.DateOf(t0)
	both.Due = &d
	_, err = s.Apply(both, Good, t0)
	is.True(errors.Is(err, ErrCorruptState))
	is.True(!errors.Is(err, ErrInvalidRating))
}
