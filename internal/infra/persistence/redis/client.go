// Package redis is the Redis token store.
package redis

import (
	"context"
	"time"

	"walletportal/config"
	"walletportal/internal/domain/lifecycle"
	"walletportal/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultDialTimeout = 5 * time.Second

// Open creates a client for cfg.Redis and registers ping and close hooks on lc.
func Open(lc fx.Lifecycle, cfg *config.Config) (goredis.UniversalClient, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis.addr is required")
	}

	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:        []string{cfg.Redis.Addr},
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultDialTimeout,
		WriteTimeout: defaultDialTimeout,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
