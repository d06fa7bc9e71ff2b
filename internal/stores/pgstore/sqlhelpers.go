package pgstore

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/domino14/srs_server/internal/srs"
)

func toPGTimestamp(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Valid: true, Time: *t}
}

func toPGDate(d civil.Date) pgtype.Date {
	return pgtype.Date{Valid: true, Time: d.In(time.UTC)}
}

func toPGOptDate(d *civil.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return toPGDate(*d)
}

func toPGInt4(p *int) pgtype.Int4 {
	if p == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Valid: true, Int32: int32(*p)}
}

func fromPGDate(d pgtype.Date) civil.Date {
	return civil.DateOf(d.Time)
}

// classify maps driver errors onto engine error kinds. Constraint failures
// mean a write would have broken a scheduling invariant.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514", "23505": // check_violation, unique_violation
			return &srs.Error{Kind: srs.CorruptState, Op: op, Err: err}
		}
	}
	return srs.StoreError(op, err)
}
