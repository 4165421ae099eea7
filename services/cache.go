package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache caches the public list responses in Redis. Every write to an
// entity deletes that entity's list key, so a cached response is never
// stale relative to the store. A nil receiver or nil client disables it.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if rdb == nil {
		return nil
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

func (lc *ListCache) Get(ctx context.Context, key string, out interface{}) bool {
	if lc == nil {
		return false
	}
	raw, err := lc.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (lc *ListCache) Set(ctx context.Context, key string, val interface{}) {
	if lc == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	lc.rdb.Set(ctx, key, raw, lc.ttl)
}

func (lc *ListCache) Invalidate(ctx context.Context, key string) {
	if lc == nil {
		return
	}
	lc.rdb.Del(ctx, key)
}
