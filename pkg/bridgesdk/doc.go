/*
Package bridgesdk provides a client SDK for interacting with the bridge service.

# Overview

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations with automatic token re-issue

Create an SDKClient to interact with public endpoints and authenticate:

	client := bridgesdk.NewSDKClient("https://bridge.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Bootstrap the protocol (one-time setup)
	bootstrap, err := client.Bootstrap(ctx, token, req)

	// Register an account, then exchange its API key for a session
	account, err := client.RegisterAccount(ctx)
	session, err := client.Authenticate(ctx, account.AccountID, account.APIKey)

Use a Session for authenticated operations:

	profile, err := session.CreateProfile(ctx, bridgesdk.CreateProfileRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	deposit, err := session.InitiateDeposit(ctx, bridgesdk.InitiateDepositRequest{
		TokenID:     tokenID,
		Amount:      10_000,
		ReferenceID: "wire-001",
	})

# Token Re-issue

Access tokens are short lived. The Session keeps the API key it was created
with and exchanges it for a fresh access token when the current one expires.
Accounts with TOTP enabled cannot re-issue silently; re-authenticate with
Client.AuthenticateWithTOTP when that happens.

# Scope Requirements

Each authenticated operation requires specific scopes. The SDK enforces scope
requirements both client-side (before making requests) and server-side.
Standard scopes:

  - bridge:read: Read own profile, vault, and settlement records
  - bridge:write: Create profiles and vaults, initiate settlements
  - operator:read: Read treasury balances
  - operator:write: Settle deposits and withdrawals, manage the token registry

Client-side scope checking is enabled by default but can be disabled for
testing:

	client := bridgesdk.NewSDKClient("https://bridge.example.com")
	client.CheckScopes = false

# Operator Settlement

Settlement operations carry an operator code header when the operator account
has TOTP enabled. Pass the current code to the session's operator methods:

	deposit, err := session.CompleteDeposit(ctx, userAccountID, referenceID, operatorCode)

Pass an empty code when the operator account has no TOTP enrolled.
*/
package bridgesdk
