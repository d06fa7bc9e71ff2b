package srs

import (
	"time"

	"cloud.google.com/go/civil"
)

const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5
	// MaxIntervalDays keeps due dates inside a sane calendar range.
	MaxIntervalDays = 36500
)

// CardSchedulingRecord is the per-(user, card) scheduling state. Exactly one
// of Queue and Due is set: Queue while the card is new, Due once it has been
// rated at least once.
type CardSchedulingRecord struct {
	UserID         int64       `json:"user_id"`
	CardID         string      `json:"card_id"`
	Queue          *int        `json:"queue,omitempty"`
	Due            *civil.Date `json:"due,omitempty"`
	EaseFactor     float64     `json:"ease_factor"`
	IntervalDays   uint32      `json:"interval_days"`
	Repetitions    uint32      `json:"repetitions"`
	LastReviewedAt *time.Time  `json:"last_reviewed_at,omitempty"`
	// Version is bumped by the store on every write and is used for
	// compare-and-swap updates.
	Version int64 `json:"version"`
}

// NewCardRecord returns a never-reviewed record sitting at the given
// new-queue position.
func NewCardRecord(userID int64, cardID string, position int) CardSchedulingRecord {
	return CardSchedulingRecord{
		UserID:     userID,
		CardID:     cardID,
		Queue:      &position,
		EaseFactor: DefaultEaseFactor,
	}
}

// IsNew reports whether the card has never been rated.
func (r CardSchedulingRecord) IsNew() bool {
	return r.Queue != nil
}

// InReview reports whether the card is scheduled by due date.
func (r CardSchedulingRecord) InReview() bool {
	return r.Due != nil
}

// Validate checks the new/review disjointness of a record.
func (r CardSchedulingRecord) Validate() error {
	if r.IsNew() == r.InReview() {
		return &Error{Kind: CorruptState, Op: "validate", UserID: r.UserID, CardIDs: []string{r.CardID}}
	}
	if r.IsNew() && *r.Queue < 0 {
		return &Error{Kind: CorruptState, Op: "validate", UserID: r.UserID, CardIDs: []string{r.CardID}}
	}
	return nil
}

// Clone returns a deep copy; baselines must not share pointers with records
// that are later mutated.
func (r CardSchedulingRecord) Clone() CardSchedulingRecord {
	c := r
	if r.Queue != nil {
		q := *r.Queue
		c.Queue = &q
	}
	if r.Due != nil {
		d := *r.Due
		c.Due = &d
	}
	if r.LastReviewedAt != nil {
		t := *r.LastReviewedAt
		c.LastReviewedAt = &t
	}
	return c
}

// DailyActivity is the per-(user, date) review tally.
type DailyActivity struct {
	UserID           int64      `json:"user_id"`
	Date             civil.Date `json:"date"`
	ReviewCount      uint32     `json:"review_count"`
	NewCardsReviewed uint32     `json:"new_cards_reviewed"`
}
