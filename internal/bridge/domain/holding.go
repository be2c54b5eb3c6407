package domain

import "time"

// HolderKind distinguishes who a holding belongs to.
type HolderKind string

const (
	// HolderVault holdings belong to a user vault (HolderID = vault ID).
	HolderVault HolderKind = "vault"
	// HolderTreasury is the bridge float backing deposit settlement
	// (HolderID = protocol config ID).
	HolderTreasury HolderKind = "treasury"
	// HolderFee accumulates the admin's fee cut (HolderID = config ID).
	HolderFee HolderKind = "fee"
)

// Holding is a single (holder, token) balance. Unique per
// (HolderKind, HolderID, TokenID).
type Holding struct {
	ID         string
	HolderKind HolderKind
	HolderID   string
	TokenID    string
	Balance    uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
