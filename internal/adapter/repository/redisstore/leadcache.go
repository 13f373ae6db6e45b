package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"simulador-backend/internal/domain/lead"

	"github.com/redis/go-redis/v9"
)

// RecentLeadCache is an append-only Redis list of lead.RecentEntry per
// visitor. Expired entries are dropped on read.
type RecentLeadCache struct{ rdb *redis.Client }

func NewRecentLeadCache(rdb *redis.Client) *RecentLeadCache { return &RecentLeadCache{rdb: rdb} }

func (c *RecentLeadCache) Add(ctx context.Context, visitorID string, e lead.RecentEntry) error {
	if visitorID == "" {
		return nil
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode recent lead: %w", err)
	}
	key := recentKey(visitorID)
	_, err = c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, payload)
		p.Expire(ctx, key, lead.RecentTTL)
		return nil
	})
	return err
}

func (c *RecentLeadCache) HasRecent(ctx context.Context, visitorID, propertyID string, now time.Time) (bool, error) {
	entries, err := c.entries(ctx, visitorID, now)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

// pruneAttempts bounds the WATCH retries when Add races a prune.
const pruneAttempts = 3

// entries returns the live entries and rewrites the list when some expired.
// The rewrite runs under WATCH so an Add landing between the read and the
// rewrite aborts it instead of being dropped.
func (c *RecentLeadCache) entries(ctx context.Context, visitorID string, now time.Time) ([]lead.RecentEntry, error) {
	key := recentKey(visitorID)

	var live []lead.RecentEntry
	prune := func(tx *redis.Tx) error {
		raws, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("read recent leads: %w", err)
		}

		live = make([]lead.RecentEntry, 0, len(raws))
		keep := make([]interface{}, 0, len(raws))
		for _, raw := range raws {
			var e lead.RecentEntry
			if err := json.Unmarshal([]byte(raw), &e); err != nil || e.Expired(now) {
				continue
			}
			live = append(live, e)
			keep = append(keep, raw)
		}
		if len(keep) == len(raws) {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Del(ctx, key)
			if len(keep) > 0 {
				p.RPush(ctx, key, keep...)
				p.Expire(ctx, key, lead.RecentTTL)
			}
			return nil
		})
		return err
	}

	for i := 0; i < pruneAttempts; i++ {
		err := c.rdb.Watch(ctx, prune, key)
		if err == nil {
			return live, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, fmt.Errorf("prune recent leads: %w", err)
		}
	}
	// still contended: answer from the last read and prune on a later one
	return live, nil
}
