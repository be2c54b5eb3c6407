package service

import (
	"context"
	"log/slog"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/slogx"
)

// RegistryService manages the token whitelist. Whitelisting also opens the
// treasury and fee holdings for the token so settlement never has to
// create them lazily.
type RegistryService struct {
	Store store.Store
}

func (s *RegistryService) Whitelist(ctx context.Context, callerAccountID, assetID, symbol, name string, isStable bool) (domain.Token, error) {
	if len(symbol) > domain.MaxTokenSymbolLen || len(name) > domain.MaxTokenNameLen {
		return domain.Token{}, ErrStringTooLong
	}

	cfg, err := requireAdmin(ctx, s.Store, callerAccountID)
	if err != nil {
		return domain.Token{}, err
	}

	t := domain.Token{
		ID:       idx.New().String(),
		Address:  cryptox.DeriveAddress(cfg.AddressSalt, "token_whitelist", assetID),
		AssetID:  assetID,
		Symbol:   symbol,
		Name:     name,
		IsStable: isStable,
		IsActive: true,
	}

	configID := protocolHolderID(cfg)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tokens().CreateToken(ctx, t); err != nil {
			return err
		}
		for _, kind := range []domain.HolderKind{domain.HolderTreasury, domain.HolderFee} {
			if err := tx.Holdings().CreateHolding(ctx, domain.Holding{
				ID:         idx.New().String(),
				HolderKind: kind,
				HolderID:   configID,
				TokenID:    t.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Token{}, err
	}

	slogx.FromContext(ctx).Info("token whitelisted",
		slog.String("token_id", t.ID),
		slog.String("symbol", symbol),
		slog.Bool("is_stable", isStable),
	)
	return t, nil
}

func (s *RegistryService) Get(ctx context.Context, tokenID string) (domain.Token, error) {
	return s.Store.Tokens().GetTokenByID(ctx, tokenID)
}

func (s *RegistryService) List(ctx context.Context) ([]domain.Token, error) {
	return s.Store.Tokens().ListTokens(ctx)
}

// SetActive pauses or resumes withdrawals for a token. Deposits may still
// be initiated against an inactive token; only the withdrawal path checks
// the flag.
func (s *RegistryService) SetActive(ctx context.Context, callerAccountID, tokenID string, active bool) error {
	if _, err := requireAdmin(ctx, s.Store, callerAccountID); err != nil {
		return err
	}
	if err := s.Store.Tokens().SetTokenActive(ctx, tokenID, active); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("token status changed",
		slog.String("token_id", tokenID),
		slog.Bool("active", active),
	)
	return nil
}
