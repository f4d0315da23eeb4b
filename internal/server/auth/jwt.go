// Package auth provides the two identity primitives of the server: signed,
// time-limited bearer tokens and one-way password hashing. Both are plain
// structs constructed with their configuration so nothing auth-related lives
// in package-level state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dkravets/folio/internal/common"
)

// TokenService issues and verifies HS256-signed JWTs. Tokens are stateless:
// there is no server-side revocation, logout is client-side discard.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService signing with secret and issuing
// tokens valid for ttl.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue mints a token whose subject is the given identity (the owner's
// email). Each token carries a unique jti.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns its subject claim.
// Failures map to the common auth sentinels: ErrTokenExpired past TTL,
// ErrMissingSubject when the subject claim is absent and ErrInvalidToken for
// everything else (bad signature, malformed input, wrong algorithm).
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", common.ErrMissingSubject
	}

	return claims.Subject, nil
}
