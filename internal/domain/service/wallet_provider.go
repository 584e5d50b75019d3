package service

import (
	"context"

	"walletportal/internal/domain/entity"
)

// WalletProvider is the wallet-as-a-service API. Every call is one round trip with no retries.
type WalletProvider interface {
	// InitiateAuth asks the provider to email a one-time code.
	InitiateAuth(ctx context.Context, email string) (*entity.InitiateAuthResult, error)

	// CompleteAuth exchanges the email and code for a session.
	CompleteAuth(ctx context.Context, email, code string) (*entity.AuthSession, error)

	// GetWalletInfo returns the wallet owned by the bearer of token.
	GetWalletInfo(ctx context.Context, token string) (*entity.WalletInfo, error)

	// GetAllUsers returns one page of the wallet directory.
	GetAllUsers(ctx context.Context, limit, page int) (*entity.UsersPage, error)

	// GetSingleUser looks up one wallet. An empty query fails locally without a network call.
	GetSingleUser(ctx context.Context, query entity.UserQuery) (*entity.WalletInfo, error)
}
