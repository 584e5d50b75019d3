package usecase

import (
	"context"

	"walletportal/internal/domain/entity"
)

// UserDirectoryUsecase lists and searches the wallet directory.
// List and search share one busy flag and one error slot.
type UserDirectoryUsecase interface {
	// Activate enters list mode and fetches the first page.
	Activate(ctx context.Context) (entity.DirectoryState, error)
	Refresh(ctx context.Context) (entity.DirectoryState, error)

	// LoadMore appends the next page. It is a no-op while busy or when there is nothing more.
	LoadMore(ctx context.Context) (entity.DirectoryState, error)

	Search(ctx context.Context, field entity.UserQueryField, value string) (entity.DirectoryState, error)
	SelectMode(mode entity.DirectoryMode) (entity.DirectoryState, error)
	State() entity.DirectoryState
	Reset()
}
