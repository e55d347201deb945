package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns nil when no address is configured or the server does
// not answer; the catalog then runs without a cache.
func ConnectRedis(ctx context.Context, cfg *Config, logger *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	var opt *redis.Options
	if parsed, err := redis.ParseURL(cfg.RedisAddr); err == nil {
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis connection failed, running without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		client.Close()
		return nil
	}

	logger.Info("redis connected", zap.String("addr", opt.Addr))
	return client
}
