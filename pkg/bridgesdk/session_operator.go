package bridgesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// operatorHeaders builds the settlement header map. The operator code is
// only required when the operator account has TOTP enabled; pass "" otherwise.
func operatorHeaders(operatorCode string) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if operatorCode != "" {
		headers["X-Operator-Code"] = operatorCode
	}
	return headers
}

// WhitelistToken adds a token to the registry with treasury and fee holdings.
// Requires operator:write scope.
func (s *Session) WhitelistToken(ctx context.Context, req WhitelistTokenRequest) (*TokenInfoResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/tokens",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"operator:write",
	)
	if err != nil {
		return nil, err
	}

	var token TokenInfoResponse
	if err := decodeJSON(resp, &token, http.StatusCreated); err != nil {
		return nil, err
	}

	return &token, nil
}

// SetTokenStatus pauses or resumes withdrawals for a token.
// Requires operator:write scope.
func (s *Session) SetTokenStatus(ctx context.Context, tokenID string, active bool) error {
	body, err := json.Marshal(SetTokenStatusRequest{Active: active})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/tokens/"+url.PathEscape(tokenID)+"/status",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"operator:write",
	)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// SetKYC flips a profile's verification flag.
// Requires operator:write scope.
func (s *Session) SetKYC(ctx context.Context, accountID string, verified bool) error {
	body, err := json.Marshal(SetKYCRequest{Verified: verified})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/profiles/"+url.PathEscape(accountID)+"/kyc",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"operator:write",
	)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// CompleteDeposit settles a pending deposit: the fee is split off and the
// net amount moves from the treasury into the user's vault.
// Requires operator:write scope.
func (s *Session) CompleteDeposit(ctx context.Context, accountID, referenceID, operatorCode string) (*DepositResponse, error) {
	path := fmt.Sprintf("/v1/operator/deposits/%s/%s/complete",
		url.PathEscape(accountID), url.PathEscape(referenceID))

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil,
		operatorHeaders(operatorCode), "operator:write")
	if err != nil {
		return nil, err
	}

	var deposit DepositResponse
	if err := decodeJSON(resp, &deposit, http.StatusOK); err != nil {
		return nil, err
	}

	return &deposit, nil
}

// CompleteWithdrawal marks a pending withdrawal paid out. The escrowed
// tokens stay with the treasury. Requires operator:write scope.
func (s *Session) CompleteWithdrawal(ctx context.Context, accountID, tokenID, referenceID, operatorCode string) (*WithdrawalResponse, error) {
	path := fmt.Sprintf("/v1/operator/withdrawals/%s/%s/%s/complete",
		url.PathEscape(accountID), url.PathEscape(tokenID), url.PathEscape(referenceID))

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil,
		operatorHeaders(operatorCode), "operator:write")
	if err != nil {
		return nil, err
	}

	var withdrawal WithdrawalResponse
	if err := decodeJSON(resp, &withdrawal, http.StatusOK); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

// CancelWithdrawal cancels a pending withdrawal and refunds the escrowed
// amount to the user's vault. Requires operator:write scope.
func (s *Session) CancelWithdrawal(ctx context.Context, accountID, tokenID, referenceID, operatorCode string) (*WithdrawalResponse, error) {
	path := fmt.Sprintf("/v1/operator/withdrawals/%s/%s/%s/cancel",
		url.PathEscape(accountID), url.PathEscape(tokenID), url.PathEscape(referenceID))

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil,
		operatorHeaders(operatorCode), "operator:write")
	if err != nil {
		return nil, err
	}

	var withdrawal WithdrawalResponse
	if err := decodeJSON(resp, &withdrawal, http.StatusOK); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

// FundTreasury credits the protocol treasury float for a token.
// Requires operator:write scope.
func (s *Session) FundTreasury(ctx context.Context, req FundTreasuryRequest, operatorCode string) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/operator/treasury/fund",
		bytes.NewReader(body),
		operatorHeaders(operatorCode),
		"operator:write",
	)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// TreasuryBalances lists treasury float and accrued fee balances per token.
// Requires operator:read scope.
func (s *Session) TreasuryBalances(ctx context.Context) (*TreasuryBalancesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/operator/treasury",
		nil, nil, "operator:read")
	if err != nil {
		return nil, err
	}

	var balances TreasuryBalancesResponse
	if err := decodeJSON(resp, &balances, http.StatusOK); err != nil {
		return nil, err
	}

	return &balances, nil
}
