package usecase

import (
	"context"

	"walletportal/internal/domain/entity"
)

// WalletViewerUsecase shows the signed-in user's own wallet.
type WalletViewerUsecase interface {
	Activate(ctx context.Context) (entity.WalletViewState, error)
	State() entity.WalletViewState

	// AddressQR renders the wallet address as a PNG, loading the wallet first if needed.
	AddressQR(ctx context.Context) ([]byte, error)

	Reset()
}
