package settings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "platform:settings"

// Cache is a read-through redis cache for the settings row. A nil *Cache is
// valid and disables caching, so callers never branch on configuration.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: 5 * time.Minute}
}

func (c *Cache) Get(ctx context.Context) (*Settings, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *Cache) Set(ctx context.Context, s *Settings) {
	if c == nil {
		return
	}
	b, err := json.Marshal(s)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey, b, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, cacheKey).Err()
}

// Store combines the repository with the optional cache.
type Store struct {
	Repo  *Repository
	Cache *Cache
}

func (s Store) Get(ctx context.Context) (*Settings, error) {
	if cached, ok := s.Cache.Get(ctx); ok {
		return cached, nil
	}
	loaded, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, loaded)
	return loaded, nil
}
