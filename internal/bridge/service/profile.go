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

type ProfileService struct {
	Store store.Store
}

// Create registers the caller's profile. One profile per account; the
// record address is derived from the owner so re-registration collides
// deterministically.
func (s *ProfileService) Create(ctx context.Context, ownerAccountID, name, email string) (domain.UserProfile, error) {
	if len(name) > domain.MaxProfileNameLen || len(email) > domain.MaxProfileEmailLen {
		return domain.UserProfile{}, ErrStringTooLong
	}

	cfg, err := config(ctx, s.Store)
	if err != nil {
		return domain.UserProfile{}, err
	}

	p := domain.UserProfile{
		ID:             idx.New().String(),
		Address:        cryptox.DeriveAddress(cfg.AddressSalt, "user_profile", ownerAccountID),
		OwnerAccountID: ownerAccountID,
		Name:           name,
		Email:          email,
	}
	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		return domain.UserProfile{}, err
	}

	slogx.FromContext(ctx).Info("profile created",
		slog.String("account_id", ownerAccountID),
		slog.String("profile_id", p.ID),
	)
	return p, nil
}

func (s *ProfileService) GetByOwner(ctx context.Context, ownerAccountID string) (domain.UserProfile, error) {
	return s.Store.Profiles().GetProfileByOwner(ctx, ownerAccountID)
}

// SetKYCVerified flips a profile's KYC flag. Admin only; the actual
// verification happens off-ledger and is reported through this channel.
func (s *ProfileService) SetKYCVerified(ctx context.Context, callerAccountID, ownerAccountID string, verified bool) error {
	if _, err := requireAdmin(ctx, s.Store, callerAccountID); err != nil {
		return err
	}
	if err := s.Store.Profiles().SetKYCVerified(ctx, ownerAccountID, verified); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("profile kyc updated",
		slog.String("account_id", ownerAccountID),
		slog.Bool("verified", verified),
	)
	return nil
}
