package domain

// AccessGrant is what the token endpoint returns.
type AccessGrant struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds until expiry
	Scope       string `json:"scope"`      // space-delimited
}

// BootstrapData is the one-time protocol initialisation payload.
type BootstrapData struct {
	FeeBasisPoints uint16
}

// BootstrapResult carries the freshly created admin credentials. The API
// key is returned exactly once and never stored in the clear.
type BootstrapResult struct {
	AdminAccountID string
	AdminAPIKey    string
	FeeBasisPoints uint16
}
