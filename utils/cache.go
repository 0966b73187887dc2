package utils

import (
	"context"
	"fmt"
	"time"

	"cpicareers/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient backs the month availability cache (REDIS_CACHE_DB).
var CacheClient *redis.Client

// InitCache connects the cache client, retrying the first ping a few times
// while Redis comes up.
func InitCache(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			CacheClient = client
			return nil
		}
		GetLogger().Warn("redis cache not reachable", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			_ = client.Close()
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	_ = client.Close()
	return fmt.Errorf("connect to redis cache at %s: %w", config.AppConfig.RedisAddr, err)
}

// GetCacheClient returns the cache client, connecting on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		if err := InitCache(context.Background()); err != nil {
			GetLogger().Fatal("redis cache unavailable", zap.Error(err))
		}
	}
	return CacheClient
}
