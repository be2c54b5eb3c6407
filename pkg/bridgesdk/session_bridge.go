package bridgesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateProfile registers the caller's bridge profile.
// Requires bridge:write scope.
func (s *Session) CreateProfile(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/profiles",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"bridge:write",
	)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusCreated); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetProfile returns the caller's profile.
// Requires bridge:read scope.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/profiles/me", nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// CreateVault opens the caller's vault. Requires an existing profile.
// Requires bridge:write scope.
func (s *Session) CreateVault(ctx context.Context) (*VaultResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/vaults", nil, nil, "bridge:write")
	if err != nil {
		return nil, err
	}

	var vault VaultResponse
	if err := decodeJSON(resp, &vault, http.StatusCreated); err != nil {
		return nil, err
	}

	return &vault, nil
}

// GetVault returns the caller's vault with its holdings.
// Requires bridge:read scope.
func (s *Session) GetVault(ctx context.Context) (*VaultResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/vaults/me", nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var vault VaultResponse
	if err := decodeJSON(resp, &vault, http.StatusOK); err != nil {
		return nil, err
	}

	return &vault, nil
}

// OpenHolding opens a zero-balance holding for a token in the caller's vault.
// Requires bridge:write scope.
func (s *Session) OpenHolding(ctx context.Context, req OpenHoldingRequest) (*HoldingResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/vaults/holdings",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"bridge:write",
	)
	if err != nil {
		return nil, err
	}

	var holding HoldingResponse
	if err := decodeJSON(resp, &holding, http.StatusCreated); err != nil {
		return nil, err
	}

	return &holding, nil
}

// ListTokens returns every token on the whitelist, active or paused.
// Requires bridge:read scope.
func (s *Session) ListTokens(ctx context.Context) ([]TokenInfoResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/tokens", nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var tokens []TokenInfoResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}

	return tokens, nil
}

// GetToken returns a single whitelisted token.
// Requires bridge:read scope.
func (s *Session) GetToken(ctx context.Context, tokenID string) (*TokenInfoResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/tokens/"+url.PathEscape(tokenID), nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var token TokenInfoResponse
	if err := decodeJSON(resp, &token, http.StatusOK); err != nil {
		return nil, err
	}

	return &token, nil
}

// InitiateDeposit announces an inbound fiat payment and records a pending
// deposit. Requires bridge:write scope.
func (s *Session) InitiateDeposit(ctx context.Context, req InitiateDepositRequest) (*DepositResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/deposits",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"bridge:write",
	)
	if err != nil {
		return nil, err
	}

	var deposit DepositResponse
	if err := decodeJSON(resp, &deposit, http.StatusCreated); err != nil {
		return nil, err
	}

	return &deposit, nil
}

// ListDeposits returns the caller's deposits, newest first.
// Requires bridge:read scope.
func (s *Session) ListDeposits(ctx context.Context) ([]DepositResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/deposits", nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var deposits []DepositResponse
	if err := decodeJSON(resp, &deposits, http.StatusOK); err != nil {
		return nil, err
	}

	return deposits, nil
}

// GetDeposit returns one of the caller's deposits by reference.
// Requires bridge:read scope.
func (s *Session) GetDeposit(ctx context.Context, referenceID string) (*DepositResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/deposits/"+url.PathEscape(referenceID), nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var deposit DepositResponse
	if err := decodeJSON(resp, &deposit, http.StatusOK); err != nil {
		return nil, err
	}

	return &deposit, nil
}

// InitiateWithdrawal escrows tokens from the caller's vault and records a
// pending withdrawal. Requires bridge:write scope.
func (s *Session) InitiateWithdrawal(ctx context.Context, req InitiateWithdrawalRequest) (*WithdrawalResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/withdrawals",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"bridge:write",
	)
	if err != nil {
		return nil, err
	}

	var withdrawal WithdrawalResponse
	if err := decodeJSON(resp, &withdrawal, http.StatusCreated); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

// ListWithdrawals returns the caller's withdrawals, newest first.
// Requires bridge:read scope.
func (s *Session) ListWithdrawals(ctx context.Context) ([]WithdrawalResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/withdrawals", nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var withdrawals []WithdrawalResponse
	if err := decodeJSON(resp, &withdrawals, http.StatusOK); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

// GetWithdrawal returns one of the caller's withdrawals by token and
// reference. Requires bridge:read scope.
func (s *Session) GetWithdrawal(ctx context.Context, tokenID, referenceID string) (*WithdrawalResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/withdrawals/"+url.PathEscape(tokenID)+"/"+url.PathEscape(referenceID),
		nil, nil, "bridge:read")
	if err != nil {
		return nil, err
	}

	var withdrawal WithdrawalResponse
	if err := decodeJSON(resp, &withdrawal, http.StatusOK); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}
