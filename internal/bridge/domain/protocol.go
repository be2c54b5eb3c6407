package domain

import "time"

// MaxFeeBasisPoints is the upper bound for the protocol fee (100%).
const MaxFeeBasisPoints = 10_000

// ProtocolConfig is the singleton bridge configuration created at bootstrap.
// The admin account is the only principal allowed to settle deposits,
// finalize withdrawals, and manage the token registry. Treasury and fee
// holdings are keyed by the config ID, so funds in them move only through
// transactional service code.
type ProtocolConfig struct {
	ID             int64  // always 1, enforced by the schema
	AdminAccountID string
	FeeBasisPoints uint16
	AddressSalt    []byte // random salt for deterministic record addresses
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
