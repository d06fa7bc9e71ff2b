package srs

import (
	"fmt"
	"math"
	"time"
)

// Scheduler computes the next scheduling state of a card from its current
// state and a rating. It has no side effects; the caller persists the result.
type Scheduler struct {
	// Location decides which calendar date "now" falls on. Nil means UTC.
	Location *time.Location
}

// Apply returns the state after rating the card at instant now. The input is
// never modified, so applying the same baseline twice yields the same result.
func (s Scheduler) Apply(state CardSchedulingRecord, rating Rating, now time.Time) (CardSchedulingRecord, error) {
	if !rating.IsValid() {
		return CardSchedulingRecord{}, &Error{Kind: InvalidRating, Op: "schedule",
			UserID: state.UserID, CardIDs: []string{state.CardID},
			Err: fmt.Errorf("rating %d", int(rating))}
	}
	if err := state.Validate(); err != nil {
		e := err.(*Error)
		e.Op = "schedule"
		return CardSchedulingRecord{}, e
	}

	// A card is on its first review while it still holds a queue position;
	// Again resets repetitions but never makes a card new again.
	firstReview := state.IsNew()
	ivl := float64(state.IntervalDays)
	next := state.Clone()

	switch rating {
	case Again:
		next.IntervalDays = 1
		next.EaseFactor = clampEase(state.EaseFactor - 0.20)
		next.Repetitions = 0
	case Hard:
		next.IntervalDays = interval(ivl * 1.2)
		next.EaseFactor = clampEase(state.EaseFactor - 0.15)
	case Good:
		if firstReview {
			next.IntervalDays = 1
		} else {
			next.IntervalDays = interval(ivl * state.EaseFactor)
		}
		next.EaseFactor = clampEase(state.EaseFactor + 0.15)
		next.Repetitions = state.Repetitions + 1
	case Easy:
		if firstReview {
			next.IntervalDays = 4
		} else {
			next.IntervalDays = interval(ivl * state.EaseFactor * 1.3)
		}
		next.EaseFactor = clampEase(state.EaseFactor + 0.15)
		next.Repetitions = state.Repetitions + 1
	}

	due := DateIn(now, s.Location).AddDays(int(next.IntervalDays))
	reviewed := now

	next.Queue = nil
	next.Due = &due
	next.LastReviewedAt = &reviewed
	return next, nil
}

func interval(days float64) uint32 {
	d := math.Floor(days)
	if d < 1 {
		return 1
	}
	if d > MaxIntervalDays {
		return MaxIntervalDays
	}
	return uint32(d)
}

// clampEase bounds the ease factor, rounding at 1e-9 to drop the float noise
// of repeated +/- steps.
func clampEase(e float64) float64 {
	e = math.Round(e*easeNoise) / easeNoise
	return math.Min(MaxEaseFactor, math.Max(MinEaseFactor, e))
}

const easeNoise = 1e9
