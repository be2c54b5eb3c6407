package service

import "errors"

// Sentinel errors shared across the bridge services. Handlers map these to
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrUnauthorized            = errors.New("caller is not the protocol admin")
	ErrInvalidFeeBasisPoints   = errors.New("fee basis points exceed 10000")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrStringTooLong           = errors.New("string field exceeds maximum length")
	ErrInvalidDepositStatus    = errors.New("deposit is not pending")
	ErrInvalidWithdrawalStatus = errors.New("withdrawal is not pending")
	ErrInvalidVaultOwner       = errors.New("vault does not belong to the deposit user")
	ErrTokenNotActive          = errors.New("token is not active")
	ErrInsufficientFunds       = errors.New("insufficient balance")
	ErrBalanceOverflow         = errors.New("balance would exceed the maximum")
	ErrNotBootstrapped         = errors.New("protocol has not been bootstrapped")
)
