// Package stores defines the CardState Store the scheduling engine consumes.
// Implementations live in the pgstore and sqlitestore subpackages.
package stores

import (
	"context"
	"embed"

	"cloud.google.com/go/civil"

	"github.com/domino14/srs_server/internal/srs"
)

// Migrations holds the SQL schema for every backend, one directory each.
//
//go:embed migrations
var Migrations embed.FS

// Querier is the set of reads and writes the engine needs. Every method
// returns errors classified by srs.Kind; driver failures surface as
// srs.StoreUnavailable.
type Querier interface {
	GetCard(ctx context.Context, userID int64, cardID string) (srs.CardSchedulingRecord, error)
	// GetCards returns the records that exist among cardIDs, in no particular order.
	GetCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error)
	// InsertCard reports false when the (user, card) pair already exists.
	InsertCard(ctx context.Context, rec srs.CardSchedulingRecord) (bool, error)
	// UpdateCard writes rec if the stored version equals expectedVersion and
	// returns the new version. A mismatch yields srs.Conflict.
	UpdateCard(ctx context.Context, rec srs.CardSchedulingRecord, expectedVersion int64) (int64, error)
	// DeleteCards removes the records and returns what was removed.
	DeleteCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error)

	// MaxQueuePosition returns the highest new-queue position; ok is false
	// when the user has no new cards.
	MaxQueuePosition(ctx context.Context, userID int64) (pos int, ok bool, err error)
	// NewCards lists new-regime records ordered by queue position. A limit
	// of zero or less means no limit.
	NewCards(ctx context.Context, userID int64, limit int) ([]srs.CardSchedulingRecord, error)
	// DueCards lists review-regime records due on or before asOf, ordered by
	// due date then card ID.
	DueCards(ctx context.Context, userID int64, asOf civil.Date, limit int) ([]srs.CardSchedulingRecord, error)
	CountDue(ctx context.Context, userID int64, asOf civil.Date) (int, error)
	// SetQueuePosition moves a new-regime card. It reports false if the card
	// is not (or no longer) in the new regime.
	SetQueuePosition(ctx context.Context, userID int64, cardID string, pos int) (bool, error)
	// ShiftQueue adds delta to every non-negative queue position >= from.
	ShiftQueue(ctx context.Context, userID int64, from, delta int) (int64, error)
	// LockUser serializes queue mutations for one user until the enclosing
	// transaction ends.
	LockUser(ctx context.Context, userID int64) error

	// GetActivity returns a zero-count record when nothing was logged that day.
	GetActivity(ctx context.Context, userID int64, date civil.Date) (srs.DailyActivity, error)
	IncrementActivity(ctx context.Context, userID int64, date civil.Date, isNew bool) error
	// ActivityRange returns the logged days in [start, end], ascending.
	ActivityRange(ctx context.Context, userID int64, start, end civil.Date) ([]srs.DailyActivity, error)
}

// Store is a Querier that can also run a function atomically.
type Store interface {
	Querier
	// WithTx runs fn in one transaction. fn's error (or a panic) rolls
	// everything back.
	WithTx(ctx context.Context, fn func(q Querier) error) error
	Close() error
}
