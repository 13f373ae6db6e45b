package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenRedis connects and pings. Sessions, lead flags, the recent-lead cache
// and idempotency keys all live on this client.
func OpenRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return r, nil
}

// OpenRedisRetry calls open with exponential backoff until it succeeds,
// maxElapsed passes or ctx is done.
func OpenRedisRetry(ctx context.Context, open func() (*redis.Client, error), maxElapsed time.Duration, log *zap.Logger) (*redis.Client, error) {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	policy.MaxInterval = 10 * time.Second

	var rdb *redis.Client
	err := backoff.RetryNotify(
		func() error {
			var err error
			rdb, err = open()
			return err
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("redis connection failed, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connect redis after retries: %w", err)
	}
	return rdb, nil
}
