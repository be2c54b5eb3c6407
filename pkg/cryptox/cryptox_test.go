package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces distinct url-safe tokens", func(t *testing.T) {
		a, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		b, err := GenerateToken(TokenSize256)
		require.NoError(t, err)

		require.NotEqual(t, a, b)
		require.NotContains(t, a, "=")
		require.NotContains(t, a, "+")
		require.NotContains(t, a, "/")
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)
		_, err = GenerateToken(-1)
		require.Error(t, err)
	})
}

func TestFingerprintTokenIsDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, FingerprintToken("abc"), FingerprintToken("abc"))
	require.NotEqual(t, FingerprintToken("abc"), FingerprintToken("abd"))
}

func TestAPIKeyHashing(t *testing.T) {
	t.Parallel()

	key := MustGenerateToken(TokenSize256)
	hash, err := HashAPIKey(key)
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, VerifyAPIKey(key, hash))
	require.Error(t, VerifyAPIKey("wrong-key", hash))
	require.Error(t, VerifyAPIKey(key, "not-a-hash"))
}

func TestDeriveAddress(t *testing.T) {
	t.Parallel()

	salt := []byte("salt")

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := DeriveAddress(salt, "fiat_deposit", "user-1", "ref-1")
		b := DeriveAddress(salt, "fiat_deposit", "user-1", "ref-1")
		require.Equal(t, a, b)
		require.Len(t, a, 64)
	})

	t.Run("distinct fields never collide on boundaries", func(t *testing.T) {
		a := DeriveAddress(salt, "fiat_deposit", "user-1", "ref")
		b := DeriveAddress(salt, "fiat_deposit", "user-1r", "ef")
		require.NotEqual(t, a, b)
	})

	t.Run("salt and label separate address spaces", func(t *testing.T) {
		a := DeriveAddress([]byte("salt-a"), "vault", "owner")
		b := DeriveAddress([]byte("salt-b"), "vault", "owner")
		c := DeriveAddress([]byte("salt-a"), "user_profile", "owner")
		require.NotEqual(t, a, b)
		require.NotEqual(t, a, c)
	})
}
