package bridge_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for bridge service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "statefi-bridge-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	feeBasisPoints = 250 // 2.5%
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Bridge Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Bridge Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/bridge/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupBridgeContainer starts the bridge service in a container and returns the base URL.
func setupBridgeContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"BRIDGE_DATABASE_FILE": "/bridge.db",
			"BRIDGE_ISSUER":        "statefi-bridge",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Relax rate limits so rapid test requests don't trip the
			// production defaults
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapProtocol bootstraps the bridge and returns an operator session.
func bootstrapProtocol(t *testing.T, client *bridgesdk.SDKClient) *bridgesdk.Session {
	t.Helper()
	ctx := context.Background()

	bootstrapResp, err := client.Bootstrap(ctx, bootstrapToken, bridgesdk.BootstrapRequest{
		FeeBasisPoints: feeBasisPoints,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, bootstrapResp.AdminAccountID, "Admin account ID should not be empty")
	require.NotEmpty(t, bootstrapResp.AdminAPIKey, "Admin API key should not be empty")
	require.Equal(t, uint16(feeBasisPoints), bootstrapResp.FeeBasisPoints)

	operator, err := client.Authenticate(ctx, bootstrapResp.AdminAccountID, bootstrapResp.AdminAPIKey)
	require.NoError(t, err, "Operator login should succeed")

	return operator
}

// registerUser creates a user account with a profile and vault, returning
// an authenticated session.
func registerUser(t *testing.T, client *bridgesdk.SDKClient, name, email string) *bridgesdk.Session {
	t.Helper()
	ctx := context.Background()

	account, err := client.RegisterAccount(ctx)
	require.NoError(t, err, "Account registration should succeed")
	require.NotEmpty(t, account.APIKey, "API key should not be empty")

	session, err := client.Authenticate(ctx, account.AccountID, account.APIKey)
	require.NoError(t, err, "User login should succeed")

	_, err = session.CreateProfile(ctx, bridgesdk.CreateProfileRequest{
		Name:  name,
		Email: email,
	})
	require.NoError(t, err, "Profile creation should succeed")

	_, err = session.CreateVault(ctx)
	require.NoError(t, err, "Vault creation should succeed")

	return session
}

// whitelistAndFund whitelists a token and funds the treasury so deposits can
// settle. Returns the token ID.
func whitelistAndFund(t *testing.T, operator *bridgesdk.Session, assetID string, treasuryFloat uint64) string {
	t.Helper()
	ctx := context.Background()

	token, err := operator.WhitelistToken(ctx, bridgesdk.WhitelistTokenRequest{
		AssetID:  assetID,
		Symbol:   "tAUD",
		Name:     "Test AUD",
		IsStable: true,
	})
	require.NoError(t, err, "Token whitelist should succeed")
	require.True(t, token.IsActive, "New tokens should start active")

	err = operator.FundTreasury(ctx, bridgesdk.FundTreasuryRequest{
		TokenID: token.ID,
		Amount:  treasuryFloat,
	}, "")
	require.NoError(t, err, "Treasury funding should succeed")

	return token.ID
}

// vaultBalance returns the session's vault balance for a token, zero when no
// holding exists.
func vaultBalance(t *testing.T, session *bridgesdk.Session, tokenID string) uint64 {
	t.Helper()

	vault, err := session.GetVault(context.Background())
	require.NoError(t, err)

	for _, h := range vault.Holdings {
		if h.TokenID == tokenID {
			return h.Balance
		}
	}
	return 0
}

// assertForbidden verifies that an error indicates missing scopes, either
// client-side or via a server 403.
func assertForbidden(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)

	if apiErr, ok := err.(*bridgesdk.APIError); ok {
		require.Equal(t, 403, apiErr.StatusCode, "%s - expected 403, got %d", context, apiErr.StatusCode)
		return
	}
	require.Contains(t, err.Error(), "missing required scope", context)
}
