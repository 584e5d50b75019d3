package errors

import (
	"fmt"
	"net/http"

	"walletportal/internal/errors"
)

// DefaultUserMessage is shown when an error carries no user-facing message.
const DefaultUserMessage = "An error occurred"

// ProviderError is a failed call to the wallet provider: either a non-2xx response or no response at all.
type ProviderError struct {
	Op         string // Provider operation, e.g. "initiate_auth"
	StatusCode int    // Provider HTTP status; 0 when the request never got a response
	Code       string // Provider error code, when the body carried one
	message    string
	cause      error
}

// NewProviderError creates an error for a non-2xx provider response.
func NewProviderError(op string, statusCode int, code, message string) *ProviderError {
	return &ProviderError{
		Op:         op,
		StatusCode: statusCode,
		Code:       code,
		message:    message,
	}
}

// NewProviderTransportError creates an error for a provider request that got no response.
func NewProviderTransportError(op, message string, cause error) *ProviderError {
	return &ProviderError{
		Op:      op,
		message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		if e.cause != nil {
			return fmt.Sprintf("provider %s: %s: %v", e.Op, e.message, e.cause)
		}

		return fmt.Sprintf("provider %s: %s", e.Op, e.message)
	}

	return fmt.Sprintf("provider %s returned %d: %s", e.Op, e.StatusCode, e.message)
}

// Unwrap returns the transport failure, if any
func (e *ProviderError) Unwrap() error {
	return e.cause
}

// HTTPCode passes provider client errors through and maps everything else to 502.
func (e *ProviderError) HTTPCode() int {
	if e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError {
		return e.StatusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	return "PROVIDER_ERROR"
}

// Message returns the provider's message verbatim, or the operation fallback.
func (e *ProviderError) Message() string {
	return e.message
}

// Details returns the provider error code, if any
func (e *ProviderError) Details() string {
	return e.Code
}

// MalformedResponseError is a 2xx provider response whose body does not match the expected schema.
type MalformedResponseError struct {
	Op     string
	Reason string
}

// NewMalformedResponseError creates a malformed response error
func NewMalformedResponseError(op, reason string) *MalformedResponseError {
	return &MalformedResponseError{Op: op, Reason: reason}
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Op, e.Reason)
}

// HTTPCode returns the HTTP status code
func (e *MalformedResponseError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *MalformedResponseError) ErrorCode() string {
	return "MALFORMED_RESPONSE"
}

// Message returns the user-friendly error message
func (e *MalformedResponseError) Message() string {
	return "Unexpected response from the wallet provider"
}

// Details returns the schema violation
func (e *MalformedResponseError) Details() string {
	return e.Reason
}

// UserMessage returns the message to show for err: the AppError message when there is one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return DefaultUserMessage
}
