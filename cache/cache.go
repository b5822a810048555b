// Package cache wraps redis with JSON get/set helpers. It backs the user
// entitlement-snapshot cache and the revoked-token set; both treat redis as
// best-effort, so callers decide how to handle errors.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get unmarshals the value stored under key into result. The boolean reports
// whether the key existed.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// SetFlag marks key present until expiration. Used for the revoked-token set
// where only membership matters.
func (c *Cache) SetFlag(ctx context.Context, key string, expiration time.Duration) error {
	return c.client.Set(ctx, key, "1", expiration).Err()
}

// HasFlag reports whether key is present.
func (c *Cache) HasFlag(ctx context.Context, key string) (bool, error) {
	_, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
