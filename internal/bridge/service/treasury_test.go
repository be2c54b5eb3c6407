package service

import (
	"context"
	"math"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestTreasuryFund(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	userID := registerUser(t, s, "alice")
	tok := whitelistToken(t, s, adminID, "asset-1")

	svc := &TreasuryService{Store: s}

	require.ErrorIs(t, svc.Fund(ctx, adminID, tok.ID, 0), ErrInvalidAmount)
	require.ErrorIs(t, svc.Fund(ctx, userID, tok.ID, 100), ErrUnauthorized)
	require.ErrorIs(t, svc.Fund(ctx, adminID, "missing-token", 100), store.ErrNotFound)

	require.NoError(t, svc.Fund(ctx, adminID, tok.ID, 1_000))
	require.NoError(t, svc.Fund(ctx, adminID, tok.ID, 500))
	require.Equal(t, uint64(1_500), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
}

func TestTreasuryFundOverflow(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	tok := whitelistToken(t, s, adminID, "asset-1")

	svc := &TreasuryService{Store: s}
	require.NoError(t, svc.Fund(ctx, adminID, tok.ID, math.MaxUint64-10))

	// Funding past the uint64 ceiling must fail without touching the balance.
	require.ErrorIs(t, svc.Fund(ctx, adminID, tok.ID, 11), ErrBalanceOverflow)
	require.Equal(t, uint64(math.MaxUint64-10), protocolBalance(t, s, domain.HolderTreasury, tok.ID))

	require.NoError(t, svc.Fund(ctx, adminID, tok.ID, 10))
	require.Equal(t, uint64(math.MaxUint64), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
}

func TestTreasuryBalances(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	userID := registerUser(t, s, "alice")
	tokA := whitelistToken(t, s, adminID, "asset-a")
	tokB := whitelistToken(t, s, adminID, "asset-b")

	svc := &TreasuryService{Store: s}
	require.NoError(t, svc.Fund(ctx, adminID, tokA.ID, 100))
	require.NoError(t, svc.Fund(ctx, adminID, tokB.ID, 200))

	_, _, err := svc.Balances(ctx, userID)
	require.ErrorIs(t, err, ErrUnauthorized)

	treasury, fees, err := svc.Balances(ctx, adminID)
	require.NoError(t, err)
	require.Len(t, treasury, 2)
	require.Len(t, fees, 2)
	for _, h := range fees {
		require.Equal(t, uint64(0), h.Balance)
	}
}
