package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("bridge-key-001")
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	verifier := NewVerifier(keys, "statefi-bridge")

	claims := NewAccessClaims(
		"account-123", "admin",
		[]string{"bridge:read", "operator:write"},
		DefaultAccessTokenTTL,
		"statefi-bridge",
		time.Now().UTC(),
	)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "account-123", got.Subject)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, []string{"bridge:read", "operator:write"}, got.Scopes)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsForgedAndForeignTokens(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("key-a")
	require.NoError(t, err)
	other, err := NewSigner("key-a") // same kid, different key material
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := NewVerifier(keys, "statefi-bridge")

	claims := NewAccessClaims("acct", "user", nil, time.Minute, "statefi-bridge", time.Now().UTC())

	t.Run("wrong signing key", func(t *testing.T) {
		raw, err := other.Sign(claims)
		require.NoError(t, err)
		_, err = verifier.Verify(raw)
		require.Error(t, err)
	})

	t.Run("unknown kid", func(t *testing.T) {
		stranger, err := NewSigner("key-b")
		require.NoError(t, err)
		raw, err := stranger.Sign(claims)
		require.NoError(t, err)
		_, err = verifier.Verify(raw)
		require.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := verifier.Verify("definitely.not.a-jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		foreign := NewAccessClaims("acct", "user", nil, time.Minute, "someone-else", time.Now().UTC())
		raw, err := signer.Sign(foreign)
		require.NoError(t, err)
		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, ErrIssuer)
	})
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("key-exp")
	require.NoError(t, err)
	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := NewVerifier(keys, "")

	claims := NewAccessClaims("acct", "user", nil, time.Minute, "", time.Now().UTC().Add(-time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}
