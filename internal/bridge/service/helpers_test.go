package service

import (
	"context"
	"testing"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/internal/bridge/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const testBootstrapToken = "test-bootstrap-token"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// bootstrapProtocol initialises the protocol at the given fee and returns
// the admin account ID.
func bootstrapProtocol(t *testing.T, s store.Store, feeBps uint16) string {
	t.Helper()

	svc := &BootstrapService{Store: s, Token: testBootstrapToken}
	res, err := svc.Bootstrap(context.Background(), testBootstrapToken, domain.BootstrapData{
		FeeBasisPoints: feeBps,
	})
	require.NoError(t, err)
	return res.AdminAccountID
}

// registerUser creates a user account with a profile and a vault, returns
// the account ID.
func registerUser(t *testing.T, s store.Store, name string) string {
	t.Helper()
	ctx := context.Background()

	acct, _, err := (&AccountService{Store: s}).Register(ctx)
	require.NoError(t, err)

	_, err = (&ProfileService{Store: s}).Create(ctx, acct.ID, name, name+"@example.com")
	require.NoError(t, err)

	_, err = (&VaultService{Store: s}).Create(ctx, acct.ID)
	require.NoError(t, err)

	return acct.ID
}

// whitelistToken whitelists a token as the admin and returns it.
func whitelistToken(t *testing.T, s store.Store, adminID, assetID string) domain.Token {
	t.Helper()

	tok, err := (&RegistryService{Store: s}).Whitelist(context.Background(), adminID, assetID, "TST", "Test Token", true)
	require.NoError(t, err)
	return tok
}

// openHolding opens a vault holding for the user and token.
func openHolding(t *testing.T, s store.Store, accountID, tokenID string) {
	t.Helper()

	_, err := (&VaultService{Store: s}).OpenHolding(context.Background(), accountID, tokenID)
	require.NoError(t, err)
}

// fundTreasury credits the treasury float as the admin.
func fundTreasury(t *testing.T, s store.Store, adminID, tokenID string, amount uint64) {
	t.Helper()

	require.NoError(t, (&TreasuryService{Store: s}).Fund(context.Background(), adminID, tokenID, amount))
}

// vaultBalance reads the user's vault holding balance for a token.
func vaultBalance(t *testing.T, s store.Store, accountID, tokenID string) uint64 {
	t.Helper()
	ctx := context.Background()

	v, err := s.Vaults().GetVaultByOwner(ctx, accountID)
	require.NoError(t, err)
	h, err := s.Holdings().GetHolding(ctx, domain.HolderVault, v.ID, tokenID)
	require.NoError(t, err)
	return h.Balance
}

// protocolBalance reads a treasury or fee holding balance.
func protocolBalance(t *testing.T, s store.Store, kind domain.HolderKind, tokenID string) uint64 {
	t.Helper()
	ctx := context.Background()

	cfg, err := s.Protocol().GetConfig(ctx)
	require.NoError(t, err)
	h, err := s.Holdings().GetHolding(ctx, kind, protocolHolderID(cfg), tokenID)
	require.NoError(t, err)
	return h.Balance
}
