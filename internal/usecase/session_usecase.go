package usecase

import (
	"context"
	"time"

	"walletportal/internal/domain/entity"
)

// SessionUsecase owns the per-browser client sessions and their stored tokens.
type SessionUsecase interface {
	// Start is an application load: any stored token for the session is discarded.
	Start(ctx context.Context, sessionID string) (entity.SessionStatus, error)
	Logout(ctx context.Context, sessionID string) (entity.SessionStatus, error)
	Status(ctx context.Context, sessionID string) (entity.SessionStatus, error)
	SwitchView(ctx context.Context, sessionID string, view entity.View) (entity.SessionStatus, error)

	// RequireToken fails with ErrNoAuthToken unless the session holds a token.
	RequireToken(ctx context.Context, sessionID string) error

	AuthFlow(sessionID string) AuthFlowUsecase
	WalletViewer(sessionID string) WalletViewerUsecase
	UserDirectory(sessionID string) UserDirectoryUsecase

	// PurgeTokens deletes every stored token, for a fresh process start.
	PurgeTokens(ctx context.Context) (int, error)

	// EvictIdle drops sessions not seen since before cutoff and deletes their tokens.
	EvictIdle(ctx context.Context, cutoff time.Time) int
}
