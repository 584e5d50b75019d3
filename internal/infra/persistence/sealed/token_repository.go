// Package sealed decorates a token store so values are encrypted at rest.
package sealed

import (
	"context"

	"walletportal/internal/domain/repository"
	"walletportal/internal/domain/service"
	"walletportal/internal/errors"
)

type tokenRepository struct {
	next   repository.TokenRepository
	sealer service.TokenSealer
}

// NewTokenRepository wraps next so every saved token is sealed and every found token opened.
func NewTokenRepository(next repository.TokenRepository, sealer service.TokenSealer) repository.TokenRepository {
	return &tokenRepository{next: next, sealer: sealer}
}

func (r *tokenRepository) Save(ctx context.Context, key, token string) error {
	sealed, err := r.sealer.Seal(token)
	if err != nil {
		return errors.Wrap(err, "failed to seal token")
	}

	return r.next.Save(ctx, key, sealed)
}

// Find treats a value that no longer opens, e.g. after a key rotation, as absent.
func (r *tokenRepository) Find(ctx context.Context, key string) (string, error) {
	sealed, err := r.next.Find(ctx, key)
	if err != nil {
		return "", err
	}

	token, err := r.sealer.Open(sealed)
	if err != nil {
		return "", repository.ErrTokenNotFound
	}

	return token, nil
}

func (r *tokenRepository) Delete(ctx context.Context, key string) error {
	return r.next.Delete(ctx, key)
}

func (r *tokenRepository) DeleteAll(ctx context.Context) (int, error) {
	return r.next.DeleteAll(ctx)
}
