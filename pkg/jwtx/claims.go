package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
// Short-lived by default; the bridge has no refresh flow, callers simply
// re-exchange their API key.
const DefaultAccessTokenTTL = 15 * time.Minute

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Claims are the access-token claims used across the bridge service.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the authenticated account ("admin" or "user").
	Role string `json:"role,omitempty"`

	// Permission scopes, e.g. "bridge:read bridge:write".
	Scopes []string `json:"scopes,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for an account.
func NewAccessClaims(
	subject, role string,
	scopes []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:   role,
		Scopes: scopes,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token is within its exp/nbf window.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
