// Package response writes the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "walletportal/internal/delivery/context"
	domainerrors "walletportal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse is the envelope of a 2xx answer.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every other answer.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "NO_AUTH_TOKEN" or "PROVIDER_ERROR"
	Message string `json:"message"`           // Shown to the user as is
	Details any    `json:"details,omitempty"` // Client errors only
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data. Wallet and session payloads are per user, so nothing is cacheable.
func Success(c echo.Context, statusCode int, data any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for server and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func exposesDetails(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// AppError writes appErr with its details, when it has any.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError answers err when it is an AppError and hands anything else to the echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
