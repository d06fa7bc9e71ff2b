package pgstore

import (
	"context"
	"errors"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Queries implements stores.Querier on a pool or a transaction.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

var _ stores.Querier = (*Queries)(nil)

const cardColumns = `user_id, card_id, queue, due, ease_factor, interval_days,
	repetitions, last_reviewed_at, version`

type cardRow struct {
	UserID         int64              `db:"user_id"`
	CardID         string             `db:"card_id"`
	Queue          pgtype.Int4        `db:"queue"`
	Due            pgtype.Date        `db:"due"`
	EaseFactor     float64            `db:"ease_factor"`
	IntervalDays   int32              `db:"interval_days"`
	Repetitions    int32              `db:"repetitions"`
	LastReviewedAt pgtype.Timestamptz `db:"last_reviewed_at"`
	Version        int64              `db:"version"`
}

func (r cardRow) record() srs.CardSchedulingRecord {
	rec := srs.CardSchedulingRecord{
		UserID:       r.UserID,
		CardID:       r.CardID,
		EaseFactor:   r.EaseFactor,
		IntervalDays: uint32(r.IntervalDays),
		Repetitions:  uint32(r.Repetitions),
		Version:      r.Version,
	}
	if r.Queue.Valid {
		q := int(r.Queue.Int32)
		rec.Queue = &q
	}
	if r.Due.Valid {
		d := fromPGDate(r.Due)
		rec.Due = &d
	}
	if r.LastReviewedAt.Valid {
		t := r.LastReviewedAt.Time.UTC()
		rec.LastReviewedAt = &t
	}
	return rec
}

func (q *Queries) queryCards(ctx context.Context, op, sql string, args ...interface{}) ([]srs.CardSchedulingRecord, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	crows, err := pgx.CollectRows(rows, pgx.RowToStructByName[cardRow])
	if err != nil {
		return nil, classify(op, err)
	}
	recs := make([]srs.CardSchedulingRecord, len(crows))
	for i := range crows {
		recs[i] = crows[i].record()
	}
	return recs, nil
}

func (q *Queries) GetCard(ctx context.Context, userID int64, cardID string) (srs.CardSchedulingRecord, error) {
	rows, err := q.db.Query(ctx, `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = $1 AND card_id = $2`, userID, cardID)
	if err != nil {
		return srs.CardSchedulingRecord{}, classify("get-card", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[cardRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return srs.CardSchedulingRecord{}, srs.NotFoundError("get-card", userID, cardID)
		}
		return srs.CardSchedulingRecord{}, classify("get-card", err)
	}
	return row.record(), nil
}

func (q *Queries) GetCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error) {
	return q.queryCards(ctx, "get-cards", `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = $1 AND card_id = ANY($2)`, userID, cardIDs)
}

func (q *Queries) InsertCard(ctx context.Context, rec srs.CardSchedulingRecord) (bool, error) {
	tag, err := q.db.Exec(ctx, `INSERT INTO srs_cards
		(user_id, card_id, queue, due, ease_factor, interval_days, repetitions, last_reviewed_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		ON CONFLICT (user_id, card_id) DO NOTHING`,
		rec.UserID, rec.CardID, toPGInt4(rec.Queue), toPGOptDate(rec.Due), rec.EaseFactor,
		int32(rec.IntervalDays), int32(rec.Repetitions), toPGTimestamp(rec.LastReviewedAt))
	if err != nil {
		return false, classify("insert-card", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (q *Queries) UpdateCard(ctx context.Context, rec srs.CardSchedulingRecord, expectedVersion int64) (int64, error) {
	var version int64
	err := q.db.QueryRow(ctx, `UPDATE srs_cards SET
		queue = $3, due = $4, ease_factor = $5, interval_days = $6, repetitions = $7,
		last_reviewed_at = $8, version = version + 1
		WHERE user_id = $1 AND card_id = $2 AND version = $9
		RETURNING version`,
		rec.UserID, rec.CardID, toPGInt4(rec.Queue), toPGOptDate(rec.Due), rec.EaseFactor,
		int32(rec.IntervalDays), int32(rec.Repetitions), toPGTimestamp(rec.LastReviewedAt),
		expectedVersion).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the card is gone or somebody else wrote it first.
			if _, gerr := q.GetCard(ctx, rec.UserID, rec.CardID); gerr != nil {
				return 0, gerr
			}
			return 0, srs.ConflictError("update-card", rec.UserID, rec.CardID, expectedVersion)
		}
		return 0, classify("update-card", err)
	}
	return version, nil
}

func (q *Queries) DeleteCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error) {
	return q.queryCards(ctx, "delete-cards", `DELETE FROM srs_cards
		WHERE user_id = $1 AND card_id = ANY($2)
		RETURNING `+cardColumns, userID, cardIDs)
}

func (q *Queries) MaxQueuePosition(ctx context.Context, userID int64) (int, bool, error) {
	var pos pgtype.Int4
	err := q.db.QueryRow(ctx, `SELECT max(queue) FROM srs_cards
		WHERE user_id = $1 AND queue IS NOT NULL`, userID).Scan(&pos)
	if err != nil {
		return 0, false, classify("max-queue-position", err)
	}
	return int(pos.Int32), pos.Valid, nil
}

func (q *Queries) NewCards(ctx context.Context, userID int64, limit int) ([]srs.CardSchedulingRecord, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	return q.queryCards(ctx, "new-cards", `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = $1 AND due IS NULL
		ORDER BY queue, card_id
		LIMIT $2`, userID, lim)
}

func (q *Queries) DueCards(ctx context.Context, userID int64, asOf civil.Date, limit int) ([]srs.CardSchedulingRecord, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	return q.queryCards(ctx, "due-cards", `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = $1 AND due IS NOT NULL AND due <= $2
		ORDER BY due, card_id
		LIMIT $3`, userID, toPGDate(asOf), lim)
}

func (q *Queries) CountDue(ctx context.Context, userID int64, asOf civil.Date) (int, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT count(*) FROM srs_cards
		WHERE user_id = $1 AND due IS NOT NULL AND due <= $2`, userID, toPGDate(asOf)).Scan(&n)
	if err != nil {
		return 0, classify("count-due", err)
	}
	return int(n), nil
}

func (q *Queries) SetQueuePosition(ctx context.Context, userID int64, cardID string, pos int) (bool, error) {
	tag, err := q.db.Exec(ctx, `UPDATE srs_cards SET queue = $3
		WHERE user_id = $1 AND card_id = $2 AND queue IS NOT NULL`, userID, cardID, int32(pos))
	if err != nil {
		return false, classify("set-queue-position", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (q *Queries) ShiftQueue(ctx context.Context, userID int64, from, delta int) (int64, error) {
	tag, err := q.db.Exec(ctx, `UPDATE srs_cards SET queue = queue + $3
		WHERE user_id = $1 AND queue IS NOT NULL AND queue >= $2`, userID, int32(from), int32(delta))
	if err != nil {
		return 0, classify("shift-queue", err)
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) LockUser(ctx context.Context, userID int64) error {
	_, err := q.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID)
	return classify("lock-user", err)
}

type activityRow struct {
	UserID           int64       `db:"user_id"`
	ActivityDate     pgtype.Date `db:"activity_date"`
	ReviewCount      int32       `db:"review_count"`
	NewCardsReviewed int32       `db:"new_cards_reviewed"`
}

func (r activityRow) activity() srs.DailyActivity {
	return srs.DailyActivity{
		UserID:           r.UserID,
		Date:             fromPGDate(r.ActivityDate),
		ReviewCount:      uint32(r.ReviewCount),
		NewCardsReviewed: uint32(r.NewCardsReviewed),
	}
}

func (q *Queries) GetActivity(ctx context.Context, userID int64, date civil.Date) (srs.DailyActivity, error) {
	rows, err := q.db.Query(ctx, `SELECT user_id, activity_date, review_count, new_cards_reviewed
		FROM srs_daily_activity WHERE user_id = $1 AND activity_date = $2`, userID, toPGDate(date))
	if err != nil {
		return srs.DailyActivity{}, classify("get-activity", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[activityRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return srs.DailyActivity{UserID: userID, Date: date}, nil
		}
		return srs.DailyActivity{}, classify("get-activity", err)
	}
	return row.activity(), nil
}

func (q *Queries) IncrementActivity(ctx context.Context, userID int64, date civil.Date, isNew bool) error {
	newInc := 0
	if isNew {
		newInc = 1
	}
	_, err := q.db.Exec(ctx, `INSERT INTO srs_daily_activity
		(user_id, activity_date, review_count, new_cards_reviewed)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id, activity_date) DO UPDATE SET
			review_count = srs_daily_activity.review_count + 1,
			new_cards_reviewed = srs_daily_activity.new_cards_reviewed + EXCLUDED.new_cards_reviewed`,
		userID, toPGDate(date), int32(newInc))
	return classify("increment-activity", err)
}

func (q *Queries) ActivityRange(ctx context.Context, userID int64, start, end civil.Date) ([]srs.DailyActivity, error) {
	rows, err := q.db.Query(ctx, `SELECT user_id, activity_date, review_count, new_cards_reviewed
		FROM srs_daily_activity
		WHERE user_id = $1 AND activity_date BETWEEN $2 AND $3
		ORDER BY activity_date`, userID, toPGDate(start), toPGDate(end))
	if err != nil {
		return nil, classify("activity-range", err)
	}
	arows, err := pgx.CollectRows(rows, pgx.RowToStructByName[activityRow])
	if err != nil {
		return nil, classify("activity-range", err)
	}
	acts := make([]srs.DailyActivity, len(arows))
	for i := range arows {
		acts[i] = arows[i].activity()
	}
	return acts, nil
}
