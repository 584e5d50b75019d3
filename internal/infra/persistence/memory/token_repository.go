// Package memory holds in-process repository implementations.
package memory

import (
	"context"
	"sync"

	"walletportal/internal/domain/repository"
)

// tokenRepository keeps tokens in a map. Nothing survives a restart.
type tokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewTokenRepository creates an empty in-memory token store.
func NewTokenRepository() repository.TokenRepository {
	return &tokenRepository{
		tokens: make(map[string]string),
	}
}

func (r *tokenRepository) Save(_ context.Context, key, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[key] = token

	return nil
}

func (r *tokenRepository) Find(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[key]
	if !ok {
		return "", repository.ErrTokenNotFound
	}

	return token, nil
}

func (r *tokenRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, key)

	return nil
}

func (r *tokenRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.tokens)
	clear(r.tokens)

	return n, nil
}
