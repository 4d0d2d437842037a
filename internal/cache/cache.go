package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"internhub_backend/internal/logger"
)

// ErrMiss is returned when a key is absent or the cache is disabled.
var ErrMiss = errors.New("cache miss")

// Cache wraps a redis client for JSON value caching. A nil Cache is valid and
// behaves as a permanent miss, so callers need no nil checks at call sites.
type Cache struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// NewClient connects to redis and pings it. Returns nil on failure; the
// application degrades to uncached reads.
func NewClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "addr", addr, "error", err)
		return nil
	}
	return client
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get unmarshals the cached JSON value into dest.
func (c *Cache) Get(ctx context.Context, k string, dest interface{}) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}
	data, err := c.client.Get(ctx, c.key(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// Set stores value as JSON with a TTL. Failures are logged, not propagated.
func (c *Cache) Set(ctx context.Context, k string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache marshal failed", "key", k, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(k), data, ttl).Err(); err != nil {
		logger.Warn("cache set failed", "key", k, "error", err)
	}
}

// Invalidate removes keys. Best-effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		logger.Warn("cache invalidate failed", "keys", keys, "error", err)
	}
}
