package handler

import (
	"net/http"

	"walletportal/internal/delivery/api/response"
	"walletportal/internal/delivery/presenter"
	"walletportal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WalletHandler serves the signed-in user's wallet.
type WalletHandler struct {
	sessions usecase.SessionUsecase
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(sessions usecase.SessionUsecase) *WalletHandler {
	return &WalletHandler{sessions: sessions}
}

// GetWallet loads the wallet of the stored token.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.sessions.WalletViewer(id).Activate(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.WalletState(state))
}

// GetWalletQR renders the wallet address as a PNG.
func (h *WalletHandler) GetWalletQR(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.sessions.WalletViewer(id).AddressQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
