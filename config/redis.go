package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/table-order-service/utils"
)

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does
// not answer a ping; callers then run without the catalog cache.
func NewRedisClient(c Config) *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		utils.ErrorLogger.Errorf("redis %s unreachable, catalog cache disabled: %v", c.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	return client
}
