// Package context carries per-request values between echo middleware, handlers and the usecase layer.
// Each value lives both in echo.Context, for handlers, and in the request context.Context, for code below
// the delivery layer.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeySessionID ContextKey = "session_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func fromEcho[T comparable](c echo.Context, key ContextKey) (T, bool) {
	var zero T
	v, ok := c.Get(string(key)).(T)

	return v, ok && v != zero
}

func fromContext[T comparable](ctx context.Context, key ContextKey) (T, bool) {
	var zero T
	v, ok := ctx.Value(key).(T)

	return v, ok && v != zero
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID of c, falling back to the response header
// when the request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := fromEcho[string](c, KeyRequestID); ok {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeyRequestID)

	return id
}

// SetSessionID sets the browser session id in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID reports the browser session id resolved by the session middleware.
func GetSessionID(c echo.Context) (string, bool) {
	return fromEcho[string](c, KeySessionID)
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, KeySessionID, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeySessionID)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := fromContext[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
