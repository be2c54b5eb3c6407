package service

import (
	"context"
	"strings"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestDepositInitiate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 250)
	userID := registerUser(t, s, "alice")
	tok := whitelistToken(t, s, adminID, "asset-1")

	svc := &DepositService{Store: s}

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := svc.Initiate(ctx, userID, tok.ID, 0, "ref-zero")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects over-long reference", func(t *testing.T) {
		_, err := svc.Initiate(ctx, userID, tok.ID, 100, strings.Repeat("x", domain.MaxReferenceLen+1))
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("requires a profile", func(t *testing.T) {
		acct, _, err := (&AccountService{Store: s}).Register(ctx)
		require.NoError(t, err)
		_, err = svc.Initiate(ctx, acct.ID, tok.ID, 100, "ref-noprofile")
		require.ErrorIs(t, err, ErrProfileRequired)
	})

	t.Run("requires a whitelisted token", func(t *testing.T) {
		_, err := svc.Initiate(ctx, userID, "missing-token", 100, "ref-notoken")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("creates pending record", func(t *testing.T) {
		d, err := svc.Initiate(ctx, userID, tok.ID, 10_000, "ref-1")
		require.NoError(t, err)
		require.Equal(t, domain.DepositPending, d.Status)
		require.Equal(t, uint64(10_000), d.Amount)
		require.NotEmpty(t, d.Address)
		require.Nil(t, d.CompletedAt)
	})

	t.Run("rejects duplicate reference", func(t *testing.T) {
		_, err := svc.Initiate(ctx, userID, tok.ID, 500, "ref-1")
		require.ErrorIs(t, err, ErrDuplicateReference)
	})

	t.Run("allows paused token", func(t *testing.T) {
		// Pausing a token stops withdrawals, not deposits.
		require.NoError(t, (&RegistryService{Store: s}).SetActive(ctx, adminID, tok.ID, false))
		_, err := svc.Initiate(ctx, userID, tok.ID, 100, "ref-paused")
		require.NoError(t, err)
	})
}

func TestDepositComplete(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 250)
	userID := registerUser(t, s, "alice")
	tok := whitelistToken(t, s, adminID, "asset-1")
	openHolding(t, s, userID, tok.ID)
	fundTreasury(t, s, adminID, tok.ID, 100_000)

	svc := &DepositService{Store: s}

	_, err := svc.Initiate(ctx, userID, tok.ID, 10_000, "ref-1")
	require.NoError(t, err)

	t.Run("non-admin cannot settle", func(t *testing.T) {
		_, err := svc.Complete(ctx, userID, userID, "ref-1")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("splits fee and credits vault", func(t *testing.T) {
		d, err := svc.Complete(ctx, adminID, userID, "ref-1")
		require.NoError(t, err)
		require.Equal(t, domain.DepositCompleted, d.Status)
		require.Equal(t, uint64(250), d.FeeAmount) // 10000 * 250bps
		require.NotNil(t, d.CompletedAt)

		require.Equal(t, uint64(9_750), vaultBalance(t, s, userID, tok.ID))
		require.Equal(t, uint64(250), protocolBalance(t, s, domain.HolderFee, tok.ID))
		require.Equal(t, uint64(90_000), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
	})

	t.Run("cannot settle twice", func(t *testing.T) {
		_, err := svc.Complete(ctx, adminID, userID, "ref-1")
		require.ErrorIs(t, err, ErrInvalidDepositStatus)

		// Balances unchanged by the failed attempt.
		require.Equal(t, uint64(9_750), vaultBalance(t, s, userID, tok.ID))
	})

	t.Run("missing vault holding aborts settlement", func(t *testing.T) {
		bobID := registerUser(t, s, "bob") // vault exists, no holding opened
		_, err := svc.Initiate(ctx, bobID, tok.ID, 1_000, "ref-bob")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, adminID, bobID, "ref-bob")
		require.ErrorIs(t, err, store.ErrNotFound)

		// Treasury untouched, record still pending.
		require.Equal(t, uint64(90_000), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
		d, err := svc.Get(ctx, bobID, "ref-bob")
		require.NoError(t, err)
		require.Equal(t, domain.DepositPending, d.Status)
	})

	t.Run("insufficient treasury aborts settlement", func(t *testing.T) {
		_, err := svc.Initiate(ctx, userID, tok.ID, 1_000_000, "ref-big")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, adminID, userID, "ref-big")
		require.ErrorIs(t, err, ErrInsufficientFunds)

		d, err := svc.Get(ctx, userID, "ref-big")
		require.NoError(t, err)
		require.Equal(t, domain.DepositPending, d.Status)
	})
}

func TestDepositCompleteFullFee(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	// 100% fee: the whole gross amount accrues to the fee holding.
	adminID := bootstrapProtocol(t, s, 10_000)
	userID := registerUser(t, s, "alice")
	tok := whitelistToken(t, s, adminID, "asset-1")
	openHolding(t, s, userID, tok.ID)
	fundTreasury(t, s, adminID, tok.ID, 5_000)

	svc := &DepositService{Store: s}
	_, err := svc.Initiate(ctx, userID, tok.ID, 5_000, "ref-1")
	require.NoError(t, err)

	d, err := svc.Complete(ctx, adminID, userID, "ref-1")
	require.NoError(t, err)
	require.Equal(t, uint64(5_000), d.FeeAmount)

	require.Equal(t, uint64(0), vaultBalance(t, s, userID, tok.ID))
	require.Equal(t, uint64(5_000), protocolBalance(t, s, domain.HolderFee, tok.ID))
	require.Equal(t, uint64(0), protocolBalance(t, s, domain.HolderTreasury, tok.ID))
}

func TestDepositListByUser(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adminID := bootstrapProtocol(t, s, 100)
	userID := registerUser(t, s, "alice")
	tok := whitelistToken(t, s, adminID, "asset-1")

	svc := &DepositService{Store: s}
	for _, ref := range []string{"a", "b", "c"} {
		_, err := svc.Initiate(ctx, userID, tok.ID, 100, ref)
		require.NoError(t, err)
	}

	deposits, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, deposits, 3)
}
