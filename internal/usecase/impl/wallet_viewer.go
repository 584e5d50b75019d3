package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/repository"
	"walletportal/internal/domain/service"
	"walletportal/internal/usecase"

	"github.com/pkg/errors"
)

// walletViewer implements the WalletViewerUsecase interface.
type walletViewer struct {
	provider service.WalletProvider
	tokens   repository.TokenRepository
	tokenKey string
	qrcode   service.QRCodeService
	logger   *slog.Logger

	mu         sync.Mutex
	state      entity.WalletViewState
	generation uint64
}

// NewWalletViewer is the constructor for walletViewer. The bearer token is read from tokenKey.
func NewWalletViewer(
	provider service.WalletProvider,
	tokens repository.TokenRepository,
	tokenKey string,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.WalletViewerUsecase {
	return &walletViewer{
		provider: provider,
		tokens:   tokens,
		tokenKey: tokenKey,
		qrcode:   qrcode,
		logger:   logger,
	}
}

func (v *walletViewer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Activate loads the wallet of the stored token. Failures are terminal: logout is the only way out.
func (v *walletViewer) Activate(ctx context.Context) (entity.WalletViewState, error) {
	v.mu.Lock()
	if v.state.Loading {
		defer v.mu.Unlock()

		return v.state, domainerrors.ErrActionInFlight
	}
	v.state = entity.WalletViewState{Loading: true}
	gen := v.generation
	v.mu.Unlock()

	wallet, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		return v.state, nil
	}
	v.state.Loading = false

	if err != nil {
		v.state.Error = domainerrors.UserMessage(err)
		v.state.CanLogout = true

		return v.state, err
	}

	v.state.Wallet = wallet

	return v.state, nil
}

func (v *walletViewer) load(ctx context.Context) (*entity.WalletInfo, error) {
	token, err := v.tokens.Find(ctx, v.tokenKey)
	if errors.Is(err, repository.ErrTokenNotFound) {
		return nil, domainerrors.ErrNoAuthToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token")
	}

	wallet, err := v.provider.GetWalletInfo(ctx, token)
	if err != nil {
		v.log(ctx).Info("Wallet fetch failed", slog.String("reason", err.Error()))

		return nil, errors.WithStack(err)
	}

	return wallet, nil
}

func (v *walletViewer) State() entity.WalletViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// AddressQR renders the held wallet's address, activating first when nothing is held.
func (v *walletViewer) AddressQR(ctx context.Context) ([]byte, error) {
	state := v.State()
	if state.Wallet == nil {
		var err error
		if state, err = v.Activate(ctx); err != nil {
			return nil, err
		}
		if state.Wallet == nil {
			return nil, domainerrors.ErrNoAuthToken
		}
	}

	png, err := v.qrcode.GenerateAddressQR(state.Wallet.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render wallet QR code")
	}

	return png, nil
}

func (v *walletViewer) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	v.state = entity.WalletViewState{}
}
