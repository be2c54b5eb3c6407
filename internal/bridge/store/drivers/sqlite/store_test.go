package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAccount(t *testing.T, s *Store, id string, role domain.Role) {
	t.Helper()
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), domain.Account{
		ID:         id,
		APIKeyHash: "$argon2id$test",
		Role:       role,
	}))
}

func seedToken(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.Tokens().CreateToken(context.Background(), domain.Token{
		ID:       id,
		Address:  "addr-" + id,
		AssetID:  "asset-" + id,
		Symbol:   "TST",
		Name:     "Test Token",
		IsActive: true,
	}))
}

func TestProtocolConfigSingleton(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedAccount(t, s, "admin-1", domain.RoleAdmin)

	_, err := s.Protocol().GetConfig(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	cfg := domain.ProtocolConfig{
		AdminAccountID: "admin-1",
		FeeBasisPoints: 250,
		AddressSalt:    []byte("salt"),
	}
	require.NoError(t, s.Protocol().CreateConfig(ctx, cfg))
	require.ErrorIs(t, s.Protocol().CreateConfig(ctx, cfg), store.ErrAlreadyExists)

	got, err := s.Protocol().GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "admin-1", got.AdminAccountID)
	require.Equal(t, uint16(250), got.FeeBasisPoints)
	require.Equal(t, []byte("salt"), got.AddressSalt)
}

func TestProfileUniquePerOwner(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedAccount(t, s, "acct-1", domain.RoleUser)

	p := domain.UserProfile{
		ID:             "prof-1",
		Address:        "addr-prof-1",
		OwnerAccountID: "acct-1",
		Name:           "Alice",
		Email:          "alice@example.com",
	}
	require.NoError(t, s.Profiles().CreateProfile(ctx, p))

	dup := p
	dup.ID = "prof-2"
	dup.Address = "addr-prof-2"
	require.ErrorIs(t, s.Profiles().CreateProfile(ctx, dup), store.ErrAlreadyExists)

	require.NoError(t, s.Profiles().SetKYCVerified(ctx, "acct-1", true))
	got, err := s.Profiles().GetProfileByOwner(ctx, "acct-1")
	require.NoError(t, err)
	require.True(t, got.KYCVerified)
}

func TestHoldingsBalanceRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedToken(t, s, "tok-1")

	h := domain.Holding{
		ID:         "hold-1",
		HolderKind: domain.HolderTreasury,
		HolderID:   "1",
		TokenID:    "tok-1",
		Balance:    0,
	}
	require.NoError(t, s.Holdings().CreateHolding(ctx, h))
	require.ErrorIs(t, s.Holdings().CreateHolding(ctx, h), store.ErrAlreadyExists)

	// Values above int64 max must survive the signed column.
	big := uint64(1) << 63
	require.NoError(t, s.Holdings().SetHoldingBalance(ctx, "hold-1", big))

	got, err := s.Holdings().GetHolding(ctx, domain.HolderTreasury, "1", "tok-1")
	require.NoError(t, err)
	require.Equal(t, big, got.Balance)
}

func TestDepositStatusGuard(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedAccount(t, s, "acct-1", domain.RoleUser)
	seedToken(t, s, "tok-1")

	d := domain.FiatDeposit{
		ID:            "dep-1",
		Address:       "addr-dep-1",
		UserAccountID: "acct-1",
		TokenID:       "tok-1",
		Amount:        10_000,
		ReferenceID:   "ref-1",
		Status:        domain.DepositPending,
		InitiatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Deposits().CreateDeposit(ctx, d))

	dup := d
	dup.ID = "dep-2"
	dup.Address = "addr-dep-2"
	require.ErrorIs(t, s.Deposits().CreateDeposit(ctx, dup), store.ErrAlreadyExists)

	now := time.Now().UTC()
	require.NoError(t, s.Deposits().MarkDepositCompleted(ctx, "dep-1", 250, now))

	// Second completion hits the pending guard.
	require.ErrorIs(t, s.Deposits().MarkDepositCompleted(ctx, "dep-1", 250, now), store.ErrNotFound)

	got, err := s.Deposits().GetDeposit(ctx, "acct-1", "ref-1")
	require.NoError(t, err)
	require.Equal(t, domain.DepositCompleted, got.Status)
	require.Equal(t, uint64(250), got.FeeAmount)
	require.NotNil(t, got.CompletedAt)
}

func TestWithdrawalFinalizeRace(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedAccount(t, s, "acct-1", domain.RoleUser)
	seedToken(t, s, "tok-1")

	w := domain.FiatWithdrawal{
		ID:            "wd-1",
		Address:       "addr-wd-1",
		UserAccountID: "acct-1",
		TokenID:       "tok-1",
		Amount:        5_000,
		ReferenceID:   "ref-1",
		Status:        domain.WithdrawalPending,
		InitiatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Withdrawals().CreateWithdrawal(ctx, w))

	now := time.Now().UTC()
	require.NoError(t, s.Withdrawals().MarkWithdrawalCancelled(ctx, "wd-1", now))

	// Already cancelled, completion must not apply.
	require.ErrorIs(t, s.Withdrawals().MarkWithdrawalCompleted(ctx, "wd-1", now), store.ErrNotFound)

	got, err := s.Withdrawals().GetWithdrawal(ctx, "acct-1", "tok-1", "ref-1")
	require.NoError(t, err)
	require.Equal(t, domain.WithdrawalCancelled, got.Status)
}

func TestStalePendingScan(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedAccount(t, s, "acct-1", domain.RoleUser)
	seedToken(t, s, "tok-1")

	old := time.Now().UTC().Add(-2 * time.Hour)
	fresh := time.Now().UTC()

	require.NoError(t, s.Deposits().CreateDeposit(ctx, domain.FiatDeposit{
		ID: "dep-old", Address: "a1", UserAccountID: "acct-1", TokenID: "tok-1",
		Amount: 100, ReferenceID: "old", Status: domain.DepositPending, InitiatedAt: old,
	}))
	require.NoError(t, s.Deposits().CreateDeposit(ctx, domain.FiatDeposit{
		ID: "dep-new", Address: "a2", UserAccountID: "acct-1", TokenID: "tok-1",
		Amount: 100, ReferenceID: "new", Status: domain.DepositPending, InitiatedAt: fresh,
	}))

	stale, err := s.Deposits().ListStalePendingDeposits(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, "dep-old", stale[0].ID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedToken(t, s, "tok-1")
	require.NoError(t, s.Holdings().CreateHolding(ctx, domain.Holding{
		ID: "hold-1", HolderKind: domain.HolderTreasury, HolderID: "1", TokenID: "tok-1", Balance: 100,
	}))

	errBoom := context.Canceled
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Holdings().SetHoldingBalance(ctx, "hold-1", 0); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := s.Holdings().GetHolding(ctx, domain.HolderTreasury, "1", "tok-1")
	require.NoError(t, err)
	require.Equal(t, uint64(100), got.Balance)
}
