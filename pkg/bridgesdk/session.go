package bridgesdk

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Session represents an authenticated session. When created from an API key
// it transparently re-issues the access token on expiry; sessions created
// from a bare token or with TOTP return an error instead.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accountID   string
	apiKey      string // empty when re-issue is not possible
	accessToken string
	expiresAt   time.Time
	scopes      map[string]bool // Granted scopes for fast lookup
}

// newSession creates a new authenticated session from a token response.
func newSession(client *SDKClient, accountID, apiKey string, tokenResp *TokenResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	// Subtract 30 seconds buffer to re-issue before actual expiry
	expiresAt = expiresAt.Add(-30 * time.Second)

	return &Session{
		client:      client,
		accountID:   accountID,
		apiKey:      apiKey,
		accessToken: tokenResp.AccessToken,
		expiresAt:   expiresAt,
		scopes:      parseScopes(tokenResp.Scope),
	}
}

// parseScopes parses a space-delimited scope string into a map for fast lookup.
func parseScopes(scopeStr string) map[string]bool {
	if scopeStr == "" {
		return make(map[string]bool)
	}

	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

// getValidToken returns a valid access token, re-issuing from the stored
// API key if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine may have re-issued)
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if s.apiKey == "" {
		return "", fmt.Errorf("access token expired and no API key available to re-issue")
	}

	tokenResp, err := s.client.IssueToken(ctx, TokenRequest{
		AccountID: s.accountID,
		APIKey:    s.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to re-issue token: %w", err)
	}

	s.accessToken = tokenResp.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - 30*time.Second)
	s.scopes = parseScopes(tokenResp.Scope)

	return s.accessToken, nil
}

// AccountID returns the account this session authenticates as.
func (s *Session) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// AccessToken returns the current access token without checking expiration.
// For most use cases, prefer using the Session methods which handle re-issue
// automatically.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Scopes returns a copy of the current granted scopes as a slice.
func (s *Session) Scopes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scopes := make([]string, 0, len(s.scopes))
	for scope := range s.scopes {
		scopes = append(scopes, scope)
	}
	return scopes
}

// HasScope returns true if the session has the specified scope.
func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// checkScopes checks if the session has all required scopes.
// Returns an error if scope checking is enabled and scopes are missing.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes {
		return nil
	}

	if len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for _, scope := range required {
		if !s.scopes[scope] {
			missing = append(missing, scope)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required scope(s): %s", strings.Join(missing, ", "))
	}

	return nil
}
