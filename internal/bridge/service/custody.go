package service

import (
	"context"
	"math"
	"math/bits"
	"strconv"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
)

// protocolHolderID keys the treasury and fee holdings to the singleton
// config row.
func protocolHolderID(cfg domain.ProtocolConfig) string {
	return strconv.FormatInt(cfg.ID, 10)
}

// feeSplit computes fee = floor(amount * bps / 10000) in 128-bit
// intermediate precision, so amounts near the uint64 ceiling cannot
// overflow, and returns (fee, net).
func feeSplit(amount uint64, bps uint16) (fee, net uint64) {
	hi, lo := bits.Mul64(amount, uint64(bps))
	fee, _ = bits.Div64(hi, lo, 10_000)
	return fee, amount - fee
}

// debit subtracts from a holding inside tx, failing with
// ErrInsufficientFunds before any row changes.
func debit(ctx context.Context, tx store.Tx, kind domain.HolderKind, holderID, tokenID string, amount uint64) error {
	h, err := tx.Holdings().GetHolding(ctx, kind, holderID, tokenID)
	if err != nil {
		return err
	}
	if h.Balance < amount {
		return ErrInsufficientFunds
	}
	return tx.Holdings().SetHoldingBalance(ctx, h.ID, h.Balance-amount)
}

// credit adds to a holding inside tx. The holding must already exist;
// settlement never creates holdings implicitly, and a balance can never
// wrap past the uint64 ceiling.
func credit(ctx context.Context, tx store.Tx, kind domain.HolderKind, holderID, tokenID string, amount uint64) error {
	h, err := tx.Holdings().GetHolding(ctx, kind, holderID, tokenID)
	if err != nil {
		return err
	}
	if h.Balance > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}
	return tx.Holdings().SetHoldingBalance(ctx, h.ID, h.Balance+amount)
}
