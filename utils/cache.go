// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"neuroglove/config"

	"github.com/go-redis/redis/v8"
)

// NewSessionCacheClient builds the Redis client used to cache session token
// lookups. The returned client is injected where needed; callers may pass a
// nil client downstream to run without the cache.
func NewSessionCacheClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
