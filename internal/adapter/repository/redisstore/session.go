package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"simulador-backend/internal/domain/wizard"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps wizard sessions as JSON blobs. Every save refreshes
// the TTL, so idle sessions expire.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sess *wizard.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.rdb.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, wizard.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess wizard.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}
