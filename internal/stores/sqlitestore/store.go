package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

// Store is the embedded CardState Store. It holds a single connection, so
// all access is serialized; use ":memory:" for a throwaway database.
type Store struct {
	*Queries
	db *sql.DB
}

var _ stores.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	log.Debug().Str("path", path).Msg("opening-sqlite-store")
	db, err := sql.Open("sqlite3", path+"?_txlock=immediate&_busy_timeout=5000")
	if err != nil {
		return nil, srs.StoreError("open", err)
	}
	// One connection: an in-memory database lives and dies with it.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, srs.StoreError("open", err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, srs.StoreError("migrate", err)
	}
	return &Store{Queries: &Queries{db: db}, db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(stores.Migrations, "migrations/sqlite")
	if err != nil {
		return err
	}
	driver, err := msqlite.WithInstance(db, &msqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}
	// Closing m would close db, so it is left for the garbage collector.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Store) WithTx(ctx context.Context, fn func(q stores.Querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return srs.StoreError("begin", err)
	}
	defer tx.Rollback()

	if err := fn(&Queries{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func classify(op string, err error) error {
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) && sqErr.Code == sqlite3.ErrConstraint {
		return &srs.Error{Kind: srs.CorruptState, Op: op, Err: err}
	}
	return srs.StoreError(op, err)
}
