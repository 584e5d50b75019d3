// Package handler holds the echo handlers of the browser API.
package handler

import (
	"net/http"

	"walletportal/internal/delivery/api/response"
	deliverycontext "walletportal/internal/delivery/context"
	domainerrors "walletportal/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// sessionID returns the session bound by the session middleware.
func sessionID(c echo.Context) (string, error) {
	id, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return "", domainerrors.ErrInvalidSession
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
