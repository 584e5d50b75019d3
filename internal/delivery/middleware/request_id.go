// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "walletportal/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied request ids before they reach logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id and a logger carrying it.
// A well-formed X-Request-Id from the caller is kept so traces can span the front end.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		id := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !isUsableRequestID(id) {
			id = uuid.NewString()
		}
		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		ctx := deliverycontext.WithRequestID(req.Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// isUsableRequestID accepts printable ASCII without spaces, so ids cannot forge log lines.
func isUsableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}
