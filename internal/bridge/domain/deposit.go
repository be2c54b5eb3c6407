package domain

import "time"

// MaxReferenceLen bounds the off-ledger payment reference on deposits
// and withdrawals.
const MaxReferenceLen = 100

type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositCompleted DepositStatus = "completed"
	DepositRejected  DepositStatus = "rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s DepositStatus) Terminal() bool {
	return s == DepositCompleted || s == DepositRejected
}

// FiatDeposit tracks an inbound fiat payment awaiting token settlement.
// Amount is the gross figure; on completion the protocol fee is split off
// to the fee holding and the remainder credited to the user's vault.
type FiatDeposit struct {
	ID            string
	Address       string
	UserAccountID string
	TokenID       string
	Amount        uint64
	FeeAmount     uint64 // set on completion
	ReferenceID   string
	Status        DepositStatus
	InitiatedAt   time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
