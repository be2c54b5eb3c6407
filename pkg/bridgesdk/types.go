package bridgesdk

import "time"

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description"`
}

// BootstrapRequest initialises the protocol. One-time only.
type BootstrapRequest struct {
	// FeeBasisPoints is the protocol fee taken on deposit settlement,
	// 0..10000.
	FeeBasisPoints uint16 `json:"fee_basis_points"`
}

// BootstrapResponse carries the admin credentials. The API key is shown
// exactly once.
type BootstrapResponse struct {
	AdminAccountID string `json:"admin_account_id"`
	AdminAPIKey    string `json:"admin_api_key"`
	FeeBasisPoints uint16 `json:"fee_basis_points"`
}

// RegisterAccountResponse carries new user-account credentials. The API
// key is shown exactly once.
type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
	APIKey    string `json:"api_key"`
}

// TokenRequest exchanges an API key for a short-lived access token.
type TokenRequest struct {
	AccountID string `json:"account_id"`
	APIKey    string `json:"api_key"`

	// TOTPCode is required once TOTP is enabled on the account.
	TOTPCode string `json:"totp_code,omitempty"`
}

// TokenResponse is the access token envelope.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
	Scope       string `json:"scope,omitempty"`
}

// TOTPEnrollResponse returns the secret and provisioning URL for an
// authenticator app. TOTP activates only after a code is verified.
type TOTPEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// TOTPVerifyRequest confirms enrolment with a generated code.
type TOTPVerifyRequest struct {
	Code string `json:"code"`
}

// CreateProfileRequest registers the caller's bridge profile.
type CreateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	Address     string    `json:"address"`
	AccountID   string    `json:"account_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	KYCVerified bool      `json:"kyc_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// SetKYCRequest flips a profile's verification flag. Operator only.
type SetKYCRequest struct {
	Verified bool `json:"verified"`
}

type VaultResponse struct {
	ID        string            `json:"id"`
	Address   string            `json:"address"`
	AccountID string            `json:"account_id"`
	Holdings  []HoldingResponse `json:"holdings,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type HoldingResponse struct {
	TokenID string `json:"token_id"`
	Balance uint64 `json:"balance"`
}

// OpenHoldingRequest opens a zero-balance vault holding for a token.
type OpenHoldingRequest struct {
	TokenID string `json:"token_id"`
}

// WhitelistTokenRequest adds a token to the registry. Operator only.
type WhitelistTokenRequest struct {
	AssetID  string `json:"asset_id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	IsStable bool   `json:"is_stable"`
}

type TokenInfoResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	AssetID   string    `json:"asset_id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	IsStable  bool      `json:"is_stable"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// SetTokenStatusRequest pauses or resumes withdrawals for a token.
type SetTokenStatusRequest struct {
	Active bool `json:"active"`
}

// InitiateDepositRequest announces an inbound fiat payment.
type InitiateDepositRequest struct {
	TokenID     string `json:"token_id"`
	Amount      uint64 `json:"amount"`
	ReferenceID string `json:"reference_id"`
}

type DepositResponse struct {
	ID          string     `json:"id"`
	Address     string     `json:"address"`
	AccountID   string     `json:"account_id"`
	TokenID     string     `json:"token_id"`
	Amount      uint64     `json:"amount"`
	FeeAmount   uint64     `json:"fee_amount"`
	ReferenceID string     `json:"reference_id"`
	Status      string     `json:"status"`
	InitiatedAt time.Time  `json:"initiated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// InitiateWithdrawalRequest escrows tokens for a fiat payout.
type InitiateWithdrawalRequest struct {
	TokenID     string `json:"token_id"`
	Amount      uint64 `json:"amount"`
	ReferenceID string `json:"reference_id"`
}

type WithdrawalResponse struct {
	ID          string     `json:"id"`
	Address     string     `json:"address"`
	AccountID   string     `json:"account_id"`
	TokenID     string     `json:"token_id"`
	Amount      uint64     `json:"amount"`
	ReferenceID string     `json:"reference_id"`
	Status      string     `json:"status"`
	InitiatedAt time.Time  `json:"initiated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// FundTreasuryRequest credits the protocol treasury float. Operator only.
type FundTreasuryRequest struct {
	TokenID string `json:"token_id"`
	Amount  uint64 `json:"amount"`
}

// TreasuryBalancesResponse lists treasury and accrued fee balances per
// token.
type TreasuryBalancesResponse struct {
	Treasury []HoldingResponse `json:"treasury"`
	Fees     []HoldingResponse `json:"fees"`
}

// HealthResponse is returned by the livez/readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
