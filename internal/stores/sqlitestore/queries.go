package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

// MaxSQLChunkSize is how many parameters we put in a single IN clause.
const MaxSQLChunkSize = 950

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries implements stores.Querier on a database handle or a transaction.
type Queries struct {
	db dbtx
}

var _ stores.Querier = (*Queries)(nil)

const cardColumns = `user_id, card_id, queue, due, ease_factor, interval_days,
	repetitions, last_reviewed_at, version`

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(row scanner) (srs.CardSchedulingRecord, error) {
	var (
		rec      srs.CardSchedulingRecord
		queue    sql.NullInt64
		due      sql.NullString
		reviewed sql.NullString
	)
	err := row.Scan(&rec.UserID, &rec.CardID, &queue, &due, &rec.EaseFactor,
		&rec.IntervalDays, &rec.Repetitions, &reviewed, &rec.Version)
	if err != nil {
		return rec, err
	}
	if queue.Valid {
		q := int(queue.Int64)
		rec.Queue = &q
	}
	if due.Valid {
		d, err := civil.ParseDate(due.String)
		if err != nil {
			return rec, &srs.Error{Kind: srs.CorruptState, Op: "scan-card", UserID: rec.UserID,
				CardIDs: []string{rec.CardID}, Err: err}
		}
		rec.Due = &d
	}
	if reviewed.Valid {
		t, err := time.Parse(time.RFC3339Nano, reviewed.String)
		if err != nil {
			return rec, &srs.Error{Kind: srs.CorruptState, Op: "scan-card", UserID: rec.UserID,
				CardIDs: []string{rec.CardID}, Err: err}
		}
		rec.LastReviewedAt = &t
	}
	return rec, nil
}

func (q *Queries) queryCards(ctx context.Context, op, query string, args ...any) ([]srs.CardSchedulingRecord, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	recs := []srs.CardSchedulingRecord{}
	for rows.Next() {
		rec, err := scanCard(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return recs, nil
}

func optQueue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func optDate(d *civil.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func optTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func noLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// inClause returns "(?, ?, ...)" with n placeholders.
func inClause(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

func chunkArgs(userID int64, ids []string) [][]any {
	var chunks [][]any
	for len(ids) > 0 {
		n := min(len(ids), MaxSQLChunkSize)
		args := make([]any, 0, n+1)
		args = append(args, userID)
		for _, id := range ids[:n] {
			args = append(args, id)
		}
		chunks = append(chunks, args)
		ids = ids[n:]
	}
	return chunks
}

func (q *Queries) GetCard(ctx context.Context, userID int64, cardID string) (srs.CardSchedulingRecord, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = ? AND card_id = ?`, userID, cardID)
	rec, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, srs.NotFoundError("get-card", userID, cardID)
		}
		return rec, classify("get-card", err)
	}
	return rec, nil
}

func (q *Queries) GetCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error) {
	recs := []srs.CardSchedulingRecord{}
	for _, args := range chunkArgs(userID, cardIDs) {
		part, err := q.queryCards(ctx, "get-cards", `SELECT `+cardColumns+` FROM srs_cards
			WHERE user_id = ? AND card_id IN `+inClause(len(args)-1), args...)
		if err != nil {
			return nil, err
		}
		recs = append(recs, part...)
	}
	return recs, nil
}

func (q *Queries) InsertCard(ctx context.Context, rec srs.CardSchedulingRecord) (bool, error) {
	res, err := q.db.ExecContext(ctx, `INSERT INTO srs_cards
		(user_id, card_id, queue, due, ease_factor, interval_days, repetitions, last_reviewed_at, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT (user_id, card_id) DO NOTHING`,
		rec.UserID, rec.CardID, optQueue(rec.Queue), optDate(rec.Due), rec.EaseFactor,
		rec.IntervalDays, rec.Repetitions, optTime(rec.LastReviewedAt))
	if err != nil {
		return false, classify("insert-card", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("insert-card", err)
	}
	return n == 1, nil
}

func (q *Queries) UpdateCard(ctx context.Context, rec srs.CardSchedulingRecord, expectedVersion int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE srs_cards SET
		queue = ?, due = ?, ease_factor = ?, interval_days = ?, repetitions = ?,
		last_reviewed_at = ?, version = version + 1
		WHERE user_id = ? AND card_id = ? AND version = ?`,
		optQueue(rec.Queue), optDate(rec.Due), rec.EaseFactor, rec.IntervalDays, rec.Repetitions,
		optTime(rec.LastReviewedAt), rec.UserID, rec.CardID, expectedVersion)
	if err != nil {
		return 0, classify("update-card", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("update-card", err)
	}
	if n == 0 {
		if _, gerr := q.GetCard(ctx, rec.UserID, rec.CardID); gerr != nil {
			return 0, gerr
		}
		return 0, srs.ConflictError("update-card", rec.UserID, rec.CardID, expectedVersion)
	}
	return expectedVersion + 1, nil
}

func (q *Queries) DeleteCards(ctx context.Context, userID int64, cardIDs []string) ([]srs.CardSchedulingRecord, error) {
	deleted := []srs.CardSchedulingRecord{}
	for _, args := range chunkArgs(userID, cardIDs) {
		part, err := q.queryCards(ctx, "delete-cards", `DELETE FROM srs_cards
			WHERE user_id = ? AND card_id IN `+inClause(len(args)-1)+`
			RETURNING `+cardColumns, args...)
		if err != nil {
			return nil, err
		}
		deleted = append(deleted, part...)
	}
	return deleted, nil
}

func (q *Queries) MaxQueuePosition(ctx context.Context, userID int64) (int, bool, error) {
	var pos sql.NullInt64
	err := q.db.QueryRowContext(ctx, `SELECT max(queue) FROM srs_cards
		WHERE user_id = ? AND queue IS NOT NULL`, userID).Scan(&pos)
	if err != nil {
		return 0, false, classify("max-queue-position", err)
	}
	return int(pos.Int64), pos.Valid, nil
}

func (q *Queries) NewCards(ctx context.Context, userID int64, limit int) ([]srs.CardSchedulingRecord, error) {
	return q.queryCards(ctx, "new-cards", `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = ? AND due IS NULL
		ORDER BY queue, card_id
		LIMIT ?`, userID, noLimit(limit))
}

func (q *Queries) DueCards(ctx context.Context, userID int64, asOf civil.Date, limit int) ([]srs.CardSchedulingRecord, error) {
	return q.queryCards(ctx, "due-cards", `SELECT `+cardColumns+` FROM srs_cards
		WHERE user_id = ? AND due IS NOT NULL AND due <= ?
		ORDER BY due, card_id
		LIMIT ?`, userID, asOf.String(), noLimit(limit))
}

func (q *Queries) CountDue(ctx context.Context, userID int64, asOf civil.Date) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `SELECT count(*) FROM srs_cards
		WHERE user_id = ? AND due IS NOT NULL AND due <= ?`, userID, asOf.String()).Scan(&n)
	if err != nil {
		return 0, classify("count-due", err)
	}
	return n, nil
}

func (q *Queries) SetQueuePosition(ctx context.Context, userID int64, cardID string, pos int) (bool, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE srs_cards SET queue = ?
		WHERE user_id = ? AND card_id = ? AND queue IS NOT NULL`, pos, userID, cardID)
	if err != nil {
		return false, classify("set-queue-position", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("set-queue-position", err)
	}
	return n == 1, nil
}

func (q *Queries) ShiftQueue(ctx context.Context, userID int64, from, delta int) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE srs_cards SET queue = queue + ?
		WHERE user_id = ? AND queue IS NOT NULL AND queue >= ?`, delta, userID, from)
	if err != nil {
		return 0, classify("shift-queue", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("shift-queue", err)
	}
	return n, nil
}

// LockUser is a no-op: transactions begin IMMEDIATE, which already holds
// the database write lock.
func (q *Queries) LockUser(ctx context.Context, userID int64) error {
	return nil
}

func (q *Queries) GetActivity(ctx context.Context, userID int64, date civil.Date) (srs.DailyActivity, error) {
	act := srs.DailyActivity{UserID: userID, Date: date}
	err := q.db.QueryRowContext(ctx, `SELECT review_count, new_cards_reviewed
		FROM srs_daily_activity WHERE user_id = ? AND activity_date = ?`, userID, date.String()).
		Scan(&act.ReviewCount, &act.NewCardsReviewed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return srs.DailyActivity{}, classify("get-activity", err)
	}
	return act, nil
}

func (q *Queries) IncrementActivity(ctx context.Context, userID int64, date civil.Date, isNew bool) error {
	newInc := 0
	if isNew {
		newInc = 1
	}
	_, err := q.db.ExecContext(ctx, `INSERT INTO srs_daily_activity
		(user_id, activity_date, review_count, new_cards_reviewed)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id, activity_date) DO UPDATE SET
			review_count = review_count + 1,
			new_cards_reviewed = new_cards_reviewed + excluded.new_cards_reviewed`,
		userID, date.String(), newInc)
	if err != nil {
		return classify("increment-activity", err)
	}
	return nil
}

func (q *Queries) ActivityRange(ctx context.Context, userID int64, start, end civil.Date) ([]srs.DailyActivity, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT activity_date, review_count, new_cards_reviewed
		FROM srs_daily_activity
		WHERE user_id = ? AND activity_date BETWEEN ? AND ?
		ORDER BY activity_date`, userID, start.String(), end.String())
	if err != nil {
		return nil, classify("activity-range", err)
	}
	defer rows.Close()
	acts := []srs.DailyActivity{}
	for rows.Next() {
		var (
			act  = srs.DailyActivity{UserID: userID}
			date string
		)
		if err := rows.Scan(&date, &act.ReviewCount, &act.NewCardsReviewed); err != nil {
			return nil, classify("activity-range", err)
		}
		if act.Date, err = civil.ParseDate(date); err != nil {
			return nil, &srs.Error{Kind: srs.CorruptState, Op: "activity-range", UserID: userID, Err: err}
		}
		acts = append(acts, act)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("activity-range", err)
	}
	return acts, nil
}
