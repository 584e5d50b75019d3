// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"walletportal/config"
	"walletportal/internal/domain/service"
)

const (
	sessionIssuer   = "walletportal"
	sessionTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the SessionTokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session cookies.
	ttl    time.Duration // Time-to-live for session cookies.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    sessionTokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a session token whose subject is sessionID.
func (s *jwtService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the signature, issuer and expiry of a session token.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}

	claims.SessionID = claims.Subject

	return claims, nil
}

// TTL returns how long an issued session token stays valid.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
