// Package persistence selects the token store backend from configuration.
package persistence

import (
	"log/slog"

	"walletportal/config"
	"walletportal/internal/domain/repository"
	"walletportal/internal/errors"
	"walletportal/internal/infra/auth"
	"walletportal/internal/infra/persistence/memory"
	"walletportal/internal/infra/persistence/postgres"
	"walletportal/internal/infra/persistence/redis"
	"walletportal/internal/infra/persistence/sealed"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenRepository opens the configured backend, sealed when a seal key is set.
func NewTokenRepository(params Params) (repository.TokenRepository, error) {
	cfg := params.Config

	var repo repository.TokenRepository
	switch cfg.TokenStore.Driver {
	case config.TokenStoreMemory, "":
		repo = memory.NewTokenRepository()
	case config.TokenStorePostgres:
		db, err := postgres.Open(params.Lifecycle, cfg, params.Logger)
		if err != nil {
			return nil, err
		}
		repo = postgres.NewTokenRepository(db, cfg.TokenStore.TTL)
	case config.TokenStoreRedis:
		client, err := redis.Open(params.Lifecycle, cfg)
		if err != nil {
			return nil, err
		}
		repo = redis.NewTokenRepository(client, cfg.TokenStore.RedisPrefix, cfg.TokenStore.TTL)
	default:
		return nil, errors.Errorf("unknown token store driver: %s", cfg.TokenStore.Driver)
	}

	params.Logger.Info("Token store ready",
		slog.String("driver", cfg.TokenStore.Driver),
		slog.Bool("sealed", cfg.SecretKey.TokenSeal != ""),
	)

	if cfg.SecretKey.TokenSeal == "" {
		return repo, nil
	}

	sealer, err := auth.NewTokenSealer(cfg.SecretKey.TokenSeal)
	if err != nil {
		return nil, err
	}

	return sealed.NewTokenRepository(repo, sealer), nil
}
