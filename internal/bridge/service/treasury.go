package service

import (
	"context"
	"log/slog"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/slogx"
)

// TreasuryService exposes the operator's view of protocol custody: funding
// the treasury float and inspecting treasury and fee balances.
type TreasuryService struct {
	Store store.Store
}

// Fund credits the treasury holding for a token. Admin only. This is how
// token inventory enters the bridge so deposits can settle.
func (s *TreasuryService) Fund(ctx context.Context, callerAccountID, tokenID string, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}

	cfg, err := requireAdmin(ctx, s.Store, callerAccountID)
	if err != nil {
		return err
	}

	configID := protocolHolderID(cfg)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return credit(ctx, tx, domain.HolderTreasury, configID, tokenID, amount)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("treasury funded",
		slog.String("token_id", tokenID),
		slog.Uint64("amount", amount),
	)
	return nil
}

// Balances returns the treasury and fee holdings across all tokens.
func (s *TreasuryService) Balances(ctx context.Context, callerAccountID string) (treasury, fees []domain.Holding, err error) {
	cfg, err := requireAdmin(ctx, s.Store, callerAccountID)
	if err != nil {
		return nil, nil, err
	}

	configID := protocolHolderID(cfg)
	treasury, err = s.Store.Holdings().ListHoldingsByHolder(ctx, domain.HolderTreasury, configID)
	if err != nil {
		return nil, nil, err
	}
	fees, err = s.Store.Holdings().ListHoldingsByHolder(ctx, domain.HolderFee, configID)
	if err != nil {
		return nil, nil, err
	}
	return treasury, fees, nil
}
