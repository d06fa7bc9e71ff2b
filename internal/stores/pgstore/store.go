package pgstore

import (
	"context"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

// Store is the Postgres-backed CardState Store.
type Store struct {
	*Queries
	pool *pgxpool.Pool
}

var _ stores.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Queries: New(pool), pool: pool}
}

// Open connects to dburi and verifies the connection.
func Open(ctx context.Context, dburi string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dburi)
	if err != nil {
		return nil, srs.StoreError("open", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, srs.StoreError("open", err)
	}
	return NewStore(pool), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(q stores.Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return srs.StoreError("begin", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return classify("commit", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Migrate brings the schema at dburi up to date.
func Migrate(dburi string) error {
	src, err := iofs.New(stores.Migrations, "migrations/postgres")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dburi)
	if err != nil {
		log.Err(err).Msg("on-new")
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Err(err).Msg("on-up")
		return err
	}
	e1, e2 := m.Close()
	if e1 != nil || e2 != nil {
		log.Warn().AnErr("source", e1).AnErr("database", e2).Msg("migrate-close")
	}
	log.Info().Msg("postgres-schema-up-to-date")
	return nil
}
