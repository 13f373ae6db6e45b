package redisstore

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"simulador-backend/internal/domain/lead"

	"github.com/redis/go-redis/v9"
)

func TestRecentLeadCache(t *testing.T) {
	s, rdb := newTestRedis(t)
	cache := NewRecentLeadCache(rdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	if ok, err := cache.HasRecent(ctx, "v1", "aurora", now); ok || err != nil {
		t.Fatalf("empty cache: %v %v", ok, err)
	}

	if err := cache.Add(ctx, "v1", lead.RecentEntry{Email: "a@x.com", PropertyID: "aurora", Timestamp: now.Add(-time.Hour)}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if ttl := s.TTL(recentKey("v1")); ttl != lead.RecentTTL {
		t.Fatalf("ttl = %v", ttl)
	}

	if ok, _ := cache.HasRecent(ctx, "v1", "aurora", now); !ok {
		t.Fatal("want recent lead for aurora")
	}
	if ok, _ := cache.HasRecent(ctx, "v1", "boreal", now); ok {
		t.Fatal("boreal has no lead")
	}
	if ok, _ := cache.HasRecent(ctx, "v2", "aurora", now); ok {
		t.Fatal("entries leak across visitors")
	}
}

func TestRecentLeadCache_PrunesExpired(t *testing.T) {
	s, rdb := newTestRedis(t)
	cache := NewRecentLeadCache(rdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	cache.Add(ctx, "v1", lead.RecentEntry{Email: "a@x.com", PropertyID: "old", Timestamp: now.Add(-8 * 24 * time.Hour)})
	cache.Add(ctx, "v1", lead.RecentEntry{Email: "a@x.com", PropertyID: "new", Timestamp: now.Add(-24 * time.Hour)})

	if ok, _ := cache.HasRecent(ctx, "v1", "old", now); ok {
		t.Fatal("expired entry reported as recent")
	}
	items, err := s.List(recentKey("v1"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected expired entry pruned, list=%v", items)
	}
	if ok, _ := cache.HasRecent(ctx, "v1", "new", now); !ok {
		t.Fatal("live entry lost by pruning")
	}

	// everything expired: key removed
	later := now.Add(7 * 24 * time.Hour)
	if ok, _ := cache.HasRecent(ctx, "v1", "new", later); ok {
		t.Fatal("entry should be expired")
	}
	if s.Exists(recentKey("v1")) {
		t.Fatal("empty list should be deleted")
	}
}

// addAfterRead runs fn once, right after the first LRANGE the client sends.
type addAfterRead struct {
	once sync.Once
	fn   func()
}

func (h *addAfterRead) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *addAfterRead) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if cmd.Name() == "lrange" {
			h.once.Do(h.fn)
		}
		return err
	}
}

func (h *addAfterRead) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRecentLeadCache_PruneKeepsConcurrentAdd(t *testing.T) {
	s, rdb := newTestRedis(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	writer := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = writer.Close() })
	other := NewRecentLeadCache(writer)
	other.Add(ctx, "v1", lead.RecentEntry{Email: "a@x.com", PropertyID: "old", Timestamp: now.Add(-8 * 24 * time.Hour)})

	rdb.AddHook(&addAfterRead{fn: func() {
		if err := other.Add(ctx, "v1", lead.RecentEntry{Email: "a@x.com", PropertyID: "racer", Timestamp: now}); err != nil {
			t.Errorf("concurrent Add: %v", err)
		}
	}})
	cache := NewRecentLeadCache(rdb)

	if ok, err := cache.HasRecent(ctx, "v1", "racer", now); err != nil || !ok {
		t.Fatalf("entry added during prune not seen: ok=%v err=%v", ok, err)
	}
	items, err := s.List(recentKey("v1"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || !strings.Contains(items[0], "racer") {
		t.Fatalf("list after prune = %v", items)
	}
}
