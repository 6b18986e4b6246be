package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"cardplanet/pkg/logger"
)

// ErrMiss is returned when a key is absent or the cache is disabled;
// callers fall back to the source fetch.
var ErrMiss = errors.New("cache miss")

// CatalogCache keeps fetched catalog snapshots in Redis with a TTL. It
// is optional: a nil receiver behaves as an always-miss cache, so the
// storefront degrades to direct marketplace fetches.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache connects to Redis at addr. An empty addr disables
// caching.
func NewCatalogCache(ctx context.Context, addr string, ttl time.Duration) *CatalogCache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable at %s, catalog caching disabled: %v", addr, err)
		return nil
	}

	return &CatalogCache{client: client, ttl: ttl}
}

// GetJSON loads and unmarshals a cached value into out.
func (c *CatalogCache) GetJSON(ctx context.Context, key string, out interface{}) error {
	if c == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		logger.Warn("Redis get failed for %s: %v", key, err)
		return ErrMiss
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Corrupt cache entry for %s: %v", key, err)
		return ErrMiss
	}

	return nil
}

// SetJSON stores a value under key for the configured TTL. Failures are
// logged and swallowed; caching is never load-bearing.
func (c *CatalogCache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal cache entry for %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("Redis set failed for %s: %v", key, err)
	}
}

// Close releases the Redis connection.
func (c *CatalogCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
