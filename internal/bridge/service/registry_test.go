package service

import (
	"context"
	"strings"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestRegistryWhitelist(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	userID := registerUser(t, s, "alice")

	svc := &RegistryService{Store: s}

	t.Run("non-admin rejected", func(t *testing.T) {
		_, err := svc.Whitelist(ctx, userID, "asset-1", "TST", "Test Token", false)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("symbol length enforced", func(t *testing.T) {
		_, err := svc.Whitelist(ctx, adminID, "asset-1", strings.Repeat("S", domain.MaxTokenSymbolLen+1), "Test", false)
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("name length enforced", func(t *testing.T) {
		_, err := svc.Whitelist(ctx, adminID, "asset-1", "TST", strings.Repeat("N", domain.MaxTokenNameLen+1), false)
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("creates token with protocol holdings", func(t *testing.T) {
		tok, err := svc.Whitelist(ctx, adminID, "asset-1", "USDS", "Stable Dollar", true)
		require.NoError(t, err)
		require.True(t, tok.IsActive)
		require.True(t, tok.IsStable)
		require.NotEmpty(t, tok.Address)

		// Treasury and fee holdings open at zero alongside the token.
		require.Equal(t, uint64(0), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
		require.Equal(t, uint64(0), protocolBalance(t, s, domain.HolderFee, tok.ID))
	})

	t.Run("duplicate asset rejected", func(t *testing.T) {
		_, err := svc.Whitelist(ctx, adminID, "asset-1", "USDS", "Stable Dollar", true)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("pause and resume", func(t *testing.T) {
		tok, err := svc.Whitelist(ctx, adminID, "asset-2", "VOL", "Volatile Token", false)
		require.NoError(t, err)

		require.ErrorIs(t, svc.SetActive(ctx, userID, tok.ID, false), ErrUnauthorized)
		require.NoError(t, svc.SetActive(ctx, adminID, tok.ID, false))

		got, err := svc.Get(ctx, tok.ID)
		require.NoError(t, err)
		require.False(t, got.IsActive)

		require.NoError(t, svc.SetActive(ctx, adminID, tok.ID, true))
		got, err = svc.Get(ctx, tok.ID)
		require.NoError(t, err)
		require.True(t, got.IsActive)
	})

	t.Run("list returns all", func(t *testing.T) {
		tokens, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
	})
}
