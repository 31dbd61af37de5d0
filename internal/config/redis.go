package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is nil when REDIS_ADDR is not configured.
var RedisClient *redis.Client

func InitRedis(ctx context.Context, cfg Config) error {
	if cfg.RedisAddr == "" {
		Logger.Warn("REDIS_ADDR is not set, outbox events will not be relayed")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	s, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis: %w", err)
	}
	RedisClient = client
	Logger.Info("Connected to Redis", zap.String("ping", s))
	return nil
}
