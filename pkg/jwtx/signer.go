package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs bridge access tokens with an Ed25519 key. Keys are
// ephemeral: a fresh pair is generated at service start, and tokens are
// short-lived enough that restarts simply force re-authentication.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner generates a fresh Ed25519 keypair under the given key ID.
func NewSigner(kid string) (*Signer, error) {
	if kid == "" {
		return nil, errors.New("jwtx: empty kid")
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &Signer{kid: kid, key: priv, pub: pub}, nil
}

func (s *Signer) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *Signer) KID() string { return s.kid }

// Sign turns claims into a signed compact JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK returns the JWK published through the JWKS endpoint.
func (s *Signer) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, "sig", s.Alg(), s.pub)
}
