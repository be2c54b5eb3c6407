package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/slogx"
)

var ErrProfileRequired = errors.New("account has no profile")

type VaultService struct {
	Store store.Store
}

// Create opens the caller's vault. Requires an existing profile; one vault
// per account.
func (s *VaultService) Create(ctx context.Context, ownerAccountID string) (domain.Vault, error) {
	cfg, err := config(ctx, s.Store)
	if err != nil {
		return domain.Vault{}, err
	}

	if _, err := s.Store.Profiles().GetProfileByOwner(ctx, ownerAccountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Vault{}, ErrProfileRequired
		}
		return domain.Vault{}, err
	}

	v := domain.Vault{
		ID:             idx.New().String(),
		Address:        cryptox.DeriveAddress(cfg.AddressSalt, "vault", ownerAccountID),
		OwnerAccountID: ownerAccountID,
	}
	if err := s.Store.Vaults().CreateVault(ctx, v); err != nil {
		return domain.Vault{}, err
	}

	slogx.FromContext(ctx).Info("vault created",
		slog.String("account_id", ownerAccountID),
		slog.String("vault_id", v.ID),
	)
	return v, nil
}

func (s *VaultService) GetByOwner(ctx context.Context, ownerAccountID string) (domain.Vault, []domain.Holding, error) {
	v, err := s.Store.Vaults().GetVaultByOwner(ctx, ownerAccountID)
	if err != nil {
		return domain.Vault{}, nil, err
	}
	holdings, err := s.Store.Holdings().ListHoldingsByHolder(ctx, domain.HolderVault, v.ID)
	if err != nil {
		return domain.Vault{}, nil, err
	}
	return v, holdings, nil
}

// OpenHolding creates a zero-balance holding for a whitelisted token in
// the caller's vault. Deposits settle only into holdings that exist.
func (s *VaultService) OpenHolding(ctx context.Context, ownerAccountID, tokenID string) (domain.Holding, error) {
	v, err := s.Store.Vaults().GetVaultByOwner(ctx, ownerAccountID)
	if err != nil {
		return domain.Holding{}, err
	}
	if _, err := s.Store.Tokens().GetTokenByID(ctx, tokenID); err != nil {
		return domain.Holding{}, err
	}

	h := domain.Holding{
		ID:         idx.New().String(),
		HolderKind: domain.HolderVault,
		HolderID:   v.ID,
		TokenID:    tokenID,
	}
	if err := s.Store.Holdings().CreateHolding(ctx, h); err != nil {
		return domain.Holding{}, err
	}
	return h, nil
}
