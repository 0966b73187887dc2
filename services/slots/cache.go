package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cpicareers/models"

	"github.com/go-redis/redis/v8"
)

// MonthKey is the cache key for one calendar month.
func MonthKey(year, month int) string {
	return fmt.Sprintf("slots:%04d-%02d", year, month)
}

type redisMonthCache struct {
	client *redis.Client
}

// NewRedisMonthCache stores month listings as JSON strings in Redis.
func NewRedisMonthCache(client *redis.Client) MonthCache {
	return &redisMonthCache{client: client}
}

func (c *redisMonthCache) Get(ctx context.Context, key string) (models.MonthSlots, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var month models.MonthSlots
	if err := json.Unmarshal(raw, &month); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return month, true, nil
}

func (c *redisMonthCache) Set(ctx context.Context, key string, month models.MonthSlots, ttl time.Duration) error {
	raw, err := json.Marshal(month)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *redisMonthCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
