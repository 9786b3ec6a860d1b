package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedisServer connects to the Redis instance used for cache invalidation
// and fails hard if the server is unreachable, since imports rely on it.
func InitRedisServer(ctx context.Context, addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		Logger.Fatal("Failed to connect to Redis", zap.String("address", addr), zap.Error(err))
	}

	return client
}
