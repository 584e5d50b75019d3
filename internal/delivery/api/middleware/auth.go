package middleware

import (
	"walletportal/internal/delivery/api/response"
	deliverycontext "walletportal/internal/delivery/context"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that need a signed-in session.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate rejects the request unless the session holds a provider token.
// It must be used AFTER the session middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := deliverycontext.GetSessionID(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrInvalidSession)
		}

		if err := m.sessions.RequireToken(c.Request().Context(), sessionID); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}
