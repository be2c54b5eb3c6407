package domain

import "time"

// Vault is an account's custody container. Balances live in per-token
// holdings keyed by the vault ID; the vault itself carries no amounts.
type Vault struct {
	ID             string
	Address        string
	OwnerAccountID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
