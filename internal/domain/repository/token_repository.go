// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no bearer token is stored under a key.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository persists provider bearer tokens under a storage key.
// Implementations must be safe for concurrent use.
type TokenRepository interface {
	// Save stores token under key, replacing any previous value.
	Save(ctx context.Context, key, token string) error

	// Find returns the token stored under key, or ErrTokenNotFound.
	Find(ctx context.Context, key string) (string, error)

	// Delete removes the token under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteAll removes every stored token and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
