package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestSessionID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetSessionID(c)
	assert.False(t, ok)

	SetSessionID(c, "s1")
	id, ok := GetSessionID(c)
	assert.True(t, ok)
	assert.Equal(t, "s1", id)

	ctx := WithSessionID(context.Background(), "s1")
	assert.Equal(t, "s1", GetSessionIDFromContext(ctx))
	assert.Empty(t, GetSessionIDFromContext(context.Background()))
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	assert.Empty(t, GetRequestID(c))

	c.Response().Header().Set(HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Nil(t, GetLogger(context.Background()))
}
