package middleware

import (
	"log/slog"
	"net/http"

	"walletportal/config"
	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware binds each browser to a session id carried in a signed cookie.
type SessionMiddleware struct {
	tokens     service.SessionTokenService
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokens service.SessionTokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	name := cfg.Session.CookieName
	if name == "" {
		name = config.DefaultSessionCookieName
	}

	return &SessionMiddleware{
		tokens:     tokens,
		cookieName: name,
		secure:     cfg.Session.CookieSecure,
		logger:     logger,
	}
}

// Process verifies the session cookie, issuing a fresh session when it is missing or invalid.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := m.verify(c)
		if !ok {
			var err error
			if sessionID, err = m.issue(c); err != nil {
				return err
			}
		}

		deliverycontext.SetSessionID(c, sessionID)

		ctx := deliverycontext.WithSessionID(c.Request().Context(), sessionID)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *SessionMiddleware) verify(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Discarding invalid session cookie", slog.String("reason", err.Error()))

		return "", false
	}

	return claims.SessionID, true
}

func (m *SessionMiddleware) issue(c echo.Context) (string, error) {
	sessionID := uuid.New().String()

	signed, err := m.tokens.Issue(sessionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue session cookie")
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID, nil
}
