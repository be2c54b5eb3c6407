package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and returns its claims when legitimate.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// EdDSAVerifier validates tokens signed with Ed25519 keys from a KeySet.
type EdDSAVerifier struct {
	keys   *KeySet
	issuer string
}

// NewVerifier creates a verifier bound to a KeySet and expected issuer.
func NewVerifier(keys *KeySet, issuer string) *EdDSAVerifier {
	return &EdDSAVerifier{keys: keys, issuer: issuer}
}

// Verify parses and validates the compact JWT string.
func (v *EdDSAVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("jwtx: missing kid")
		}
		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKID, kid)
		}
		return pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, err
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	return *claims, nil
}
