package bridge_test

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// TestTokenVerificationViaJWKS verifies that tokens issued by the service
// can be verified against the published JWKS.
func TestTokenVerificationViaJWKS(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)
	operator := bootstrapProtocol(t, client)

	jwksResp, err := client.GetJWKS(t.Context())
	require.NoError(t, err, "Should fetch JWKS successfully")
	require.NotEmpty(t, jwksResp.Keys, "JWKS should contain at least one key")

	keySet := jwtx.NewKeySet()
	for _, key := range jwksResp.Keys {
		require.NoError(t, keySet.AddJWK(key))
	}

	verifier := jwtx.NewVerifier(keySet, "statefi-bridge")
	claims, err := verifier.Verify(operator.AccessToken())
	require.NoError(t, err, "Should verify access token successfully")

	require.Equal(t, operator.AccountID(), claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.Contains(t, claims.Scopes, "operator:write")
}

// TestScopeEnforcement verifies user tokens cannot reach operator endpoints.
func TestScopeEnforcement(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)
	// Disable client-side checks so the server enforces scopes
	client.CheckScopes = false

	operator := bootstrapProtocol(t, client)
	tokenID := whitelistAndFund(t, operator, "asset-aud-001", 100_000)

	user := registerUser(t, client, "Alice", "alice@example.com")

	_, err := user.WhitelistToken(t.Context(), bridgesdk.WhitelistTokenRequest{
		AssetID: "asset-evil",
		Symbol:  "EVIL",
		Name:    "Evil Token",
	})
	assertForbidden(t, err, "User should not whitelist tokens")

	err = user.SetTokenStatus(t.Context(), tokenID, false)
	assertForbidden(t, err, "User should not pause tokens")

	err = user.FundTreasury(t.Context(), bridgesdk.FundTreasuryRequest{
		TokenID: tokenID,
		Amount:  1,
	}, "")
	assertForbidden(t, err, "User should not fund the treasury")

	_, err = user.TreasuryBalances(t.Context())
	assertForbidden(t, err, "User should not read treasury balances")

	err = user.SetKYC(t.Context(), user.AccountID(), true)
	assertForbidden(t, err, "User should not set their own KYC flag")
}

// TestTOTPEnrollmentGatesTokenIssue verifies that once TOTP is enabled the
// API key alone no longer issues tokens.
func TestTOTPEnrollmentGatesTokenIssue(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)
	bootstrapProtocol(t, client)

	account, err := client.RegisterAccount(t.Context())
	require.NoError(t, err)

	session, err := client.Authenticate(t.Context(), account.AccountID, account.APIKey)
	require.NoError(t, err)

	enroll, err := session.EnrollTOTP(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.NotEmpty(t, enroll.URL)

	// Enrolment is not active until verified; the bare key still works
	_, err = client.Authenticate(t.Context(), account.AccountID, account.APIKey)
	require.NoError(t, err, "Unverified enrolment should not gate login")

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.VerifyTOTP(t.Context(), code))

	// Now the bare key is rejected
	_, err = client.Authenticate(t.Context(), account.AccountID, account.APIKey)
	require.Error(t, err, "TOTP-enabled account should require a code")

	// With a fresh code the login succeeds
	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	_, err = client.AuthenticateWithTOTP(t.Context(), account.AccountID, account.APIKey, code)
	require.NoError(t, err, "Login with TOTP code should succeed")
}

// TestBootstrapIsOneTime verifies bootstrap can only run once and requires
// the configured token.
func TestBootstrapIsOneTime(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)

	_, err := client.Bootstrap(t.Context(), "wrong-token", bridgesdk.BootstrapRequest{
		FeeBasisPoints: feeBasisPoints,
	})
	require.Error(t, err, "Wrong bootstrap token should be rejected")

	bootstrapProtocol(t, client)

	_, err = client.Bootstrap(t.Context(), bootstrapToken, bridgesdk.BootstrapRequest{
		FeeBasisPoints: feeBasisPoints,
	})
	require.Error(t, err, "Second bootstrap should be rejected")
}

// TestHealthEndpoints verifies the probes respond.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupBridgeContainer(t)
	defer cleanup()

	client := bridgesdk.NewSDKClient(baseURL)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}
