package domain

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalCancelled WithdrawalStatus = "cancelled"
)

func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalCancelled
}

// FiatWithdrawal tracks an outbound fiat payout. Initiation escrows the
// full amount from the user's vault into the treasury; completion is a
// status flip (the fiat leg settles off-ledger), cancellation refunds the
// exact escrowed amount.
type FiatWithdrawal struct {
	ID            string
	Address       string
	UserAccountID string
	TokenID       string
	Amount        uint64
	ReferenceID   string
	Status        WithdrawalStatus
	InitiatedAt   time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
