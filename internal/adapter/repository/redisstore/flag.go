package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// FlagStore keeps the "lead form completed" flag per visitor without expiry.
type FlagStore struct{ rdb *redis.Client }

func NewFlagStore(rdb *redis.Client) *FlagStore { return &FlagStore{rdb: rdb} }

func (s *FlagStore) Completed(ctx context.Context, visitorID string) (bool, error) {
	if visitorID == "" {
		return false, nil
	}
	v, err := s.rdb.Get(ctx, flagKey(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get lead flag: %w", err)
	}
	return v == "1", nil
}

func (s *FlagStore) SetCompleted(ctx context.Context, visitorID string, completed bool) error {
	if visitorID == "" {
		return nil
	}
	if !completed {
		return s.rdb.Del(ctx, flagKey(visitorID)).Err()
	}
	return s.rdb.Set(ctx, flagKey(visitorID), "1", 0).Err()
}
