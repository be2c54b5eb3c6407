package bridge_test

import (
	"testing"

	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/stretchr/testify/require"
)

// seedVaultViaDeposit funds a user's vault by settling a deposit.
func seedVaultViaDeposit(t *testing.T, operator, user *bridgesdk.Session, tokenID string, amount uint64, ref string) {
	t.Helper()

	_, err := user.InitiateDeposit(t.Context(), bridgesdk.InitiateDepositRequest{
		TokenID:     tokenID,
		Amount:      amount,
		ReferenceID: ref,
	})
	require.NoError(t, err)

	_, err = operator.CompleteDeposit(t.Context(), user.AccountID(), ref, "")
	require.NoError(t, err)
}

// TestWithdrawalRoundTrip exercises escrow, payout, and cancellation.
func TestWithdrawalRoundTrip(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)

	operator := bootstrapProtocol(t, client)
	tokenID := whitelistAndFund(t, operator, "asset-aud-001", 1_000_000)

	user := registerUser(t, client, "Alice", "alice@example.com")
	seedVaultViaDeposit(t, operator, user, tokenID, 10_000, "seed-001")
	seeded := vaultBalance(t, user, tokenID)
	require.Equal(t, uint64(9_750), seeded, "250 bps fee leaves 9750 of 10000")

	// Withdrawing more than the balance fails and records nothing
	_, err := user.InitiateWithdrawal(t.Context(), bridgesdk.InitiateWithdrawalRequest{
		TokenID:     tokenID,
		Amount:      seeded + 1,
		ReferenceID: "payout-over",
	})
	require.Error(t, err, "Overdraw should be rejected")
	list, err := user.ListWithdrawals(t.Context())
	require.NoError(t, err)
	require.Empty(t, list, "Failed initiation should leave no record")

	// Escrow moves out of the vault immediately
	wd, err := user.InitiateWithdrawal(t.Context(), bridgesdk.InitiateWithdrawalRequest{
		TokenID:     tokenID,
		Amount:      4_000,
		ReferenceID: "payout-001",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", wd.Status)
	require.Equal(t, seeded-4_000, vaultBalance(t, user, tokenID))

	// Completion is a status flip, the escrow stays with the treasury
	completed, err := operator.CompleteWithdrawal(t.Context(), user.AccountID(), tokenID, "payout-001", "")
	require.NoError(t, err)
	require.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)
	require.Equal(t, seeded-4_000, vaultBalance(t, user, tokenID))

	// Cancellation refunds the escrow exactly
	_, err = user.InitiateWithdrawal(t.Context(), bridgesdk.InitiateWithdrawalRequest{
		TokenID:     tokenID,
		Amount:      2_000,
		ReferenceID: "payout-002",
	})
	require.NoError(t, err)
	require.Equal(t, seeded-6_000, vaultBalance(t, user, tokenID))

	cancelled, err := operator.CancelWithdrawal(t.Context(), user.AccountID(), tokenID, "payout-002", "")
	require.NoError(t, err)
	require.Equal(t, "cancelled", cancelled.Status)
	require.Equal(t, seeded-4_000, vaultBalance(t, user, tokenID))

	// Finalized withdrawals cannot be re-finalized
	_, err = operator.CompleteWithdrawal(t.Context(), user.AccountID(), tokenID, "payout-002", "")
	require.Error(t, err, "Cancelled withdrawal cannot be completed")
}

// TestPausedTokenBlocksWithdrawals verifies pause semantics: withdrawals stop,
// deposits keep flowing.
func TestPausedTokenBlocksWithdrawals(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)

	operator := bootstrapProtocol(t, client)
	tokenID := whitelistAndFund(t, operator, "asset-aud-001", 100_000)

	user := registerUser(t, client, "Alice", "alice@example.com")
	seedVaultViaDeposit(t, operator, user, tokenID, 4_000, "seed-001")

	require.NoError(t, operator.SetTokenStatus(t.Context(), tokenID, false))

	_, err := user.InitiateWithdrawal(t.Context(), bridgesdk.InitiateWithdrawalRequest{
		TokenID:     tokenID,
		Amount:      100,
		ReferenceID: "payout-paused",
	})
	require.Error(t, err, "Paused token should block withdrawals")

	// Deposits against a paused token are still accepted
	_, err = user.InitiateDeposit(t.Context(), bridgesdk.InitiateDepositRequest{
		TokenID:     tokenID,
		Amount:      100,
		ReferenceID: "wire-paused",
	})
	require.NoError(t, err, "Paused token should still accept deposits")

	// Resume and retry
	require.NoError(t, operator.SetTokenStatus(t.Context(), tokenID, true))
	_, err = user.InitiateWithdrawal(t.Context(), bridgesdk.InitiateWithdrawalRequest{
		TokenID:     tokenID,
		Amount:      100,
		ReferenceID: "payout-resumed",
	})
	require.NoError(t, err)
}
