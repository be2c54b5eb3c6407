package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
)

// JWK is a public key in JSON Web Key form (RFC 7517). The bridge signs
// exclusively with Ed25519, so only the OKP fields are populated.
type JWK struct {
	Kty string `json:"kty"`           // key type: "OKP"
	Use string `json:"use,omitempty"` // "sig"
	Alg string `json:"alg,omitempty"` // "EdDSA"
	Kid string `json:"kid,omitempty"` // key ID

	Crv string `json:"crv,omitempty"` // "Ed25519"
	X   string `json:"x,omitempty"`   // base64url public key
}

// JWKS is a JSON Web Key Set.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// NewEd25519JWK builds a JWK for an Ed25519 public key.
func NewEd25519JWK(kid, use, alg string, pub ed25519.PublicKey) JWK {
	return JWK{
		Kty: "OKP",
		Use: use,
		Alg: alg,
		Kid: kid,
		Crv: "Ed25519",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
}

// parseJWKToKey converts an OKP JWK back into an ed25519.PublicKey.
func parseJWKToKey(j JWK) (ed25519.PublicKey, error) {
	if j.Kty != "OKP" || j.Crv != "Ed25519" {
		return nil, errors.New("jwtx: unsupported key type " + j.Kty + "/" + j.Crv)
	}
	xb, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, err
	}
	if len(xb) != ed25519.PublicKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 public key length")
	}
	return ed25519.PublicKey(xb), nil
}
