package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by the browser session cookie.
type SessionClaims struct {
	SessionID string `json:"-"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates the signed browser session cookie value.
type SessionTokenService interface {
	// Issue signs a new session token for sessionID.
	Issue(sessionID string) (string, error)

	// Validate checks the signature and expiry of a session token.
	Validate(tokenString string) (*SessionClaims, error)

	// TTL returns how long an issued session token stays valid.
	TTL() time.Duration
}
