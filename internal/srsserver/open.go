package srsserver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/config"
	"github.com/domino14/srs_server/internal/session"
	"github.com/domino14/srs_server/internal/stores"
	"github.com/domino14/srs_server/internal/stores/pgstore"
	"github.com/domino14/srs_server/internal/stores/sqlitestore"
)

// OpenStore opens the backend named by cfg.Store, migrating it to the
// latest schema first.
func OpenStore(ctx context.Context, cfg *config.Config) (stores.Store, error) {
	switch cfg.Store {
	case config.StorePostgres:
		if cfg.DBConnURI == "" {
			return nil, fmt.Errorf("db-conn-uri is required for the postgres store")
		}
		if err := pgstore.Migrate(cfg.DBConnURI); err != nil {
			return nil, err
		}
		return pgstore.Open(ctx, cfg.DBConnURI)
	case config.StoreSQLite:
		log.Info().Str("path", cfg.SQLitePath).Msg("opening-sqlite-store")
		return sqlitestore.Open(cfg.SQLitePath)
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// OpenCounter returns a Redis-backed counter when cfg.RedisURL is set and an
// in-process one otherwise. The returned func releases it.
func OpenCounter(ctx context.Context, cfg *config.Config) (session.Counter, func() error, error) {
	if cfg.RedisURL == "" {
		return session.NewMemoryCounter(), func() error { return nil }, nil
	}
	rc, err := session.NewRedisCounter(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return rc, rc.Close, nil
}
