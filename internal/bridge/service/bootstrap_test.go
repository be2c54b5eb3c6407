package service

import (
	"context"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("creates admin and config", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)
		ctx := context.Background()

		svc := &BootstrapService{Store: s, Token: testBootstrapToken}

		ok, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.False(t, ok)

		res, err := svc.Bootstrap(ctx, testBootstrapToken, domain.BootstrapData{FeeBasisPoints: 250})
		require.NoError(t, err)
		require.NotEmpty(t, res.AdminAccountID)
		require.NotEmpty(t, res.AdminAPIKey)
		require.Equal(t, uint16(250), res.FeeBasisPoints)

		cfg, err := s.Protocol().GetConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, res.AdminAccountID, cfg.AdminAccountID)
		require.Len(t, cfg.AddressSalt, 32)

		acct, err := s.Accounts().GetAccountByID(ctx, res.AdminAccountID)
		require.NoError(t, err)
		require.True(t, acct.IsAdmin())
		require.NotEqual(t, res.AdminAPIKey, acct.APIKeyHash)
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)

		svc := &BootstrapService{Store: s, Token: testBootstrapToken}
		_, err := svc.Bootstrap(context.Background(), "wrong", domain.BootstrapData{FeeBasisPoints: 100})
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("rejects fee above 10000", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)

		svc := &BootstrapService{Store: s, Token: testBootstrapToken}
		_, err := svc.Bootstrap(context.Background(), testBootstrapToken, domain.BootstrapData{FeeBasisPoints: 10_001})
		require.ErrorIs(t, err, ErrInvalidFeeBasisPoints)
	})

	t.Run("accepts fee at exactly 10000", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)

		svc := &BootstrapService{Store: s, Token: testBootstrapToken}
		_, err := svc.Bootstrap(context.Background(), testBootstrapToken, domain.BootstrapData{FeeBasisPoints: 10_000})
		require.NoError(t, err)
	})

	t.Run("one-time only", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)
		ctx := context.Background()

		svc := &BootstrapService{Store: s, Token: testBootstrapToken}
		_, err := svc.Bootstrap(ctx, testBootstrapToken, domain.BootstrapData{FeeBasisPoints: 100})
		require.NoError(t, err)

		_, err = svc.Bootstrap(ctx, testBootstrapToken, domain.BootstrapData{FeeBasisPoints: 100})
		require.ErrorIs(t, err, ErrBootstrapAlready)

		ok, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	})
}

func TestAccountRegisterRequiresBootstrap(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, _, err := (&AccountService{Store: s}).Register(context.Background())
	require.ErrorIs(t, err, ErrNotBootstrapped)
}
