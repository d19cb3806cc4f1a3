package catalogue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"offr-backend/internal/shared/telemetry"
)

// Cache is the read-through cache in front of course lookups. Implementations
// must be safe for concurrent use; failures degrade to misses, never errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// RedisCache caches catalogue entries in Redis with TTL eviction.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a RedisCache. TTL must be positive.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			telemetry.Warn("cache.get_failed", map[string]any{"key": key, "error": err.Error()})
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		telemetry.Warn("cache.set_failed", map[string]any{"key": key, "error": err.Error()})
	}
}

// NoopCache disables caching. Used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (NoopCache) Set(ctx context.Context, key string, value []byte)  {}
