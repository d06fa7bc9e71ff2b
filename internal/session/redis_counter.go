package session

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/redis/go-redis/v9"

	"github.com/domino14/srs_server/internal/srs"
)

// countedTTL keeps a marker alive for the rest of its day plus a day of
// slack for clients in other time zones.
const countedTTL = 48 * time.Hour

// RedisCounter shares the counted set between server processes.
type RedisCounter struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCounter connects to redisURL (redis://host:port/db) and pings it.
func NewRedisCounter(ctx context.Context, redisURL string) (*RedisCounter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCounter{rdb: rdb, prefix: "srs:counted"}, nil
}

func (r *RedisCounter) key(userID int64, cardID string, date civil.Date) string {
	return fmt.Sprintf("%s:%d:%s:%s", r.prefix, userID, date, cardID)
}

func (r *RedisCounter) MarkCounted(ctx context.Context, userID int64, cardID string, date civil.Date) (bool, error) {
	first, err := r.rdb.SetNX(ctx, r.key(userID, cardID, date), 1, countedTTL).Result()
	if err != nil {
		return false, srs.StoreError("mark-counted", err)
	}
	return first, nil
}

func (r *RedisCounter) Unmark(ctx context.Context, userID int64, cardID string, date civil.Date) error {
	return srs.StoreError("unmark-counted", r.rdb.Del(ctx, r.key(userID, cardID, date)).Err())
}

func (r *RedisCounter) Close() error {
	return r.rdb.Close()
}
