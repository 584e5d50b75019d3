package errors

import (
	"net/http"

	"walletportal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined errors. Messages are shown to the user verbatim.
var (
	// Validation-related errors
	ErrValidationFailed   = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidEmail       = newError(http.StatusBadRequest, "INVALID_EMAIL", "Please enter a valid email address")
	ErrEmptyCode          = newError(http.StatusBadRequest, "EMPTY_CODE", "Please enter the verification code")
	ErrEmptySearchQuery   = newError(http.StatusBadRequest, "EMPTY_SEARCH_QUERY", "Please enter a search value")
	ErrUnknownSearchField = newError(http.StatusBadRequest, "UNKNOWN_SEARCH_FIELD", "Search by address, email, phone, externalWalletAddress or id")
	ErrInvalidView        = newError(http.StatusBadRequest, "INVALID_VIEW", "Unknown view")

	// Authentication-related errors
	ErrNoAuthToken      = newError(http.StatusUnauthorized, "NO_AUTH_TOKEN", "No authentication token found.")
	ErrNotAuthenticated = newError(http.StatusUnauthorized, "NOT_AUTHENTICATED", "Please sign in first")
	ErrInvalidSession   = newError(http.StatusUnauthorized, "INVALID_SESSION", "Invalid or expired session")

	// Flow-state errors
	ErrActionInFlight  = newError(http.StatusConflict, "ACTION_IN_FLIGHT", "A request is already in progress")
	ErrInvalidAuthStep = newError(http.StatusConflict, "INVALID_AUTH_STEP", "This step is not available right now")

	// General errors
	ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later")
)

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Token storage is unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
