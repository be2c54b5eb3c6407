package service

import (
	"context"
	"strings"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestProfileCreate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	bootstrapProtocol(t, s, 100)

	acct, _, err := (&AccountService{Store: s}).Register(ctx)
	require.NoError(t, err)

	svc := &ProfileService{Store: s}

	t.Run("name length enforced", func(t *testing.T) {
		_, err := svc.Create(ctx, acct.ID, strings.Repeat("n", domain.MaxProfileNameLen+1), "a@example.com")
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("email length enforced", func(t *testing.T) {
		_, err := svc.Create(ctx, acct.ID, "Alice", strings.Repeat("e", domain.MaxProfileEmailLen+1))
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("creates once per account", func(t *testing.T) {
		p, err := svc.Create(ctx, acct.ID, "Alice", "alice@example.com")
		require.NoError(t, err)
		require.False(t, p.KYCVerified)
		require.NotEmpty(t, p.Address)

		_, err = svc.Create(ctx, acct.ID, "Alice Again", "alice2@example.com")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestProfileKYC(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	userID := registerUser(t, s, "alice")

	svc := &ProfileService{Store: s}

	require.ErrorIs(t, svc.SetKYCVerified(ctx, userID, userID, true), ErrUnauthorized)

	require.NoError(t, svc.SetKYCVerified(ctx, adminID, userID, true))
	p, err := svc.GetByOwner(ctx, userID)
	require.NoError(t, err)
	require.True(t, p.KYCVerified)

	require.NoError(t, svc.SetKYCVerified(ctx, adminID, userID, false))
	p, err = svc.GetByOwner(ctx, userID)
	require.NoError(t, err)
	require.False(t, p.KYCVerified)
}

func TestVaultLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	tok := whitelistToken(t, s, adminID, "asset-1")

	acct, _, err := (&AccountService{Store: s}).Register(ctx)
	require.NoError(t, err)

	svc := &VaultService{Store: s}

	t.Run("requires profile", func(t *testing.T) {
		_, err := svc.Create(ctx, acct.ID)
		require.ErrorIs(t, err, ErrProfileRequired)
	})

	t.Run("one vault per account", func(t *testing.T) {
		_, err := (&ProfileService{Store: s}).Create(ctx, acct.ID, "Alice", "alice@example.com")
		require.NoError(t, err)

		v, err := svc.Create(ctx, acct.ID)
		require.NoError(t, err)
		require.NotEmpty(t, v.Address)

		_, err = svc.Create(ctx, acct.ID)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("holdings open explicitly", func(t *testing.T) {
		_, holdings, err := svc.GetByOwner(ctx, acct.ID)
		require.NoError(t, err)
		require.Empty(t, holdings)

		h, err := svc.OpenHolding(ctx, acct.ID, tok.ID)
		require.NoError(t, err)
		require.Equal(t, uint64(0), h.Balance)

		_, err = svc.OpenHolding(ctx, acct.ID, tok.ID)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		_, holdings, err = svc.GetByOwner(ctx, acct.ID)
		require.NoError(t, err)
		require.Len(t, holdings, 1)
	})

	t.Run("holding requires whitelisted token", func(t *testing.T) {
		_, err := svc.OpenHolding(ctx, acct.ID, "missing-token")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
