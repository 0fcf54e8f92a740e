package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache adapts the redis client to the catalog cache contract.
// A cache miss is reported as an empty value, not an error.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing redis connection.
func NewRedisCache(r *Redis) *RedisCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &RedisCache{client: r.Client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}
