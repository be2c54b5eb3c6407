package bridgesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the bridge service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes determines whether to perform client-side scope validation
	// before making API requests. When true, the Session will check if it has
	// the required scopes before making a request and return an error if not.
	// Set to false for testing to ensure server-side scope checks work
	// correctly. Default: true
	CheckScopes bool
}

// NewSDKClient creates a new bridge service client with scope checking enabled.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}

// RegisterAccount creates a new user account. The returned API key is shown
// exactly once; store it securely.
func (c *SDKClient) RegisterAccount(ctx context.Context) (*RegisterAccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/accounts", nil, nil)
	if err != nil {
		return nil, err
	}

	var accountResp RegisterAccountResponse
	if err := decodeJSON(resp, &accountResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &accountResp, nil
}

// IssueToken exchanges an account's API key for a short-lived access token.
// Most callers want Authenticate, which wraps the token in a Session.
func (c *SDKClient) IssueToken(ctx context.Context, req TokenRequest) (*TokenResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/token",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
	)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// Authenticate exchanges an API key for an access token and returns an
// authenticated session. The session keeps the API key so it can re-issue
// the access token when it expires.
func (c *SDKClient) Authenticate(ctx context.Context, accountID, apiKey string) (*Session, error) {
	tokenResp, err := c.IssueToken(ctx, TokenRequest{
		AccountID: accountID,
		APIKey:    apiKey,
	})
	if err != nil {
		return nil, err
	}

	return newSession(c, accountID, apiKey, tokenResp), nil
}

// AuthenticateWithTOTP authenticates an account that has TOTP enabled.
// The returned session cannot silently re-issue its token; create a new
// session with a fresh code when the access token expires.
func (c *SDKClient) AuthenticateWithTOTP(ctx context.Context, accountID, apiKey, totpCode string) (*Session, error) {
	tokenResp, err := c.IssueToken(ctx, TokenRequest{
		AccountID: accountID,
		APIKey:    apiKey,
		TOTPCode:  totpCode,
	})
	if err != nil {
		return nil, err
	}

	// Leave the API key out so the session never retries without a code
	return newSession(c, accountID, "", tokenResp), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// access token. This is useful when the token was obtained elsewhere. The
// session cannot re-issue the token when it expires.
func (c *SDKClient) NewSessionFromToken(accountID, accessToken, scope string, expiresIn int) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // 30 second buffer

	return &Session{
		client:      c,
		accountID:   accountID,
		accessToken: accessToken,
		expiresAt:   expiresAt,
		scopes:      parseScopes(scope),
	}
}
