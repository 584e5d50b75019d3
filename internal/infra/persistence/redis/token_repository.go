package redis

import (
	"context"
	"time"

	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/repository"
	"walletportal/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// tokenRepository stores each token as a plain string key under prefix.
type tokenRepository struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewTokenRepository creates a token store. A zero ttl keeps keys until deleted.
func NewTokenRepository(client goredis.UniversalClient, prefix string, ttl time.Duration) repository.TokenRepository {
	return &tokenRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *tokenRepository) key(key string) string {
	return r.prefix + key
}

func (r *tokenRepository) Save(ctx context.Context, key, token string) error {
	if err := r.client.Set(ctx, r.key(key), token, r.ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save token")
	}

	return nil
}

func (r *tokenRepository) Find(ctx context.Context, key string) (string, error) {
	token, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", repository.ErrTokenNotFound
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return token, nil
}

func (r *tokenRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete token")
	}

	return nil
}

// DeleteAll removes every key under the prefix, one SCAN batch at a time.
func (r *tokenRepository) DeleteAll(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return removed, domainerrors.NewDatabaseExecuteError(err, "failed to scan tokens")
		}

		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, domainerrors.NewDatabaseExecuteError(err, "failed to purge tokens")
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
