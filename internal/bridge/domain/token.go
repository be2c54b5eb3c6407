package domain

import "time"

// Field length limits for token whitelisting.
const (
	MaxTokenSymbolLen = 10
	MaxTokenNameLen   = 50
)

// Token is a whitelisted asset the bridge will custody. Deposits may be
// initiated against any whitelisted token; withdrawals additionally
// require IsActive.
type Token struct {
	ID        string
	Address   string
	AssetID   string // external asset identifier, unique
	Symbol    string
	Name      string
	IsStable  bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
