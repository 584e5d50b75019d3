// Package middleware holds echo middleware specific to the browser API.
package middleware

import (
	"log/slog"
	"net/http"

	"walletportal/internal/delivery/api/response"
	deliverycontext "walletportal/internal/delivery/context"
	domainerrors "walletportal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler. Every failure leaves as the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError answers err unless the handler already wrote a response.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := m.classify(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(appErr.HTTPCode())

		return
	}
	_ = response.AppError(c, appErr)
}

// classify turns any error into an AppError and logs what the client will not see.
func (m *ErrorMiddleware) classify(err error, c echo.Context) domainerrors.AppError {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).With(
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)

	var providerErr *domainerrors.ProviderError
	if errors.As(err, &providerErr) {
		level := slog.LevelInfo
		if providerErr.HTTPCode() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Request().Context(), level, "Provider rejected request",
			slog.String("op", providerErr.Op),
			slog.Int("upstreamStatus", providerErr.StatusCode),
		)

		return providerErr
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Warn("Request failed", slog.String("errorCode", appErr.ErrorCode()), slog.Any("error", err))
		}

		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := domainerrors.DefaultUserMessage
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, "")
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	return domainerrors.ErrInternalError
}
