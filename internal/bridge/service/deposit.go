package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/slogx"
)

var ErrDuplicateReference = errors.New("reference already used")

// DepositService runs the fiat-in flow: a user announces an inbound fiat
// payment, and once the money lands off-ledger the admin settles it by
// moving tokens from the treasury into the user's vault, minus the
// protocol fee which accrues to the fee holding.
type DepositService struct {
	Store store.Store
}

// Initiate records a pending deposit. The token must be whitelisted but
// need not be active; pausing a token stops withdrawals, not deposits.
func (s *DepositService) Initiate(ctx context.Context, userAccountID, tokenID string, amount uint64, referenceID string) (domain.FiatDeposit, error) {
	if amount == 0 {
		return domain.FiatDeposit{}, ErrInvalidAmount
	}
	if len(referenceID) > domain.MaxReferenceLen {
		return domain.FiatDeposit{}, ErrStringTooLong
	}

	cfg, err := config(ctx, s.Store)
	if err != nil {
		return domain.FiatDeposit{}, err
	}

	if _, err := s.Store.Profiles().GetProfileByOwner(ctx, userAccountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.FiatDeposit{}, ErrProfileRequired
		}
		return domain.FiatDeposit{}, err
	}
	if _, err := s.Store.Tokens().GetTokenByID(ctx, tokenID); err != nil {
		return domain.FiatDeposit{}, err
	}

	d := domain.FiatDeposit{
		ID:            idx.New().String(),
		Address:       cryptox.DeriveAddress(cfg.AddressSalt, "fiat_deposit", userAccountID, referenceID),
		UserAccountID: userAccountID,
		TokenID:       tokenID,
		Amount:        amount,
		ReferenceID:   referenceID,
		Status:        domain.DepositPending,
		InitiatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Deposits().CreateDeposit(ctx, d); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.FiatDeposit{}, ErrDuplicateReference
		}
		return domain.FiatDeposit{}, err
	}

	slogx.FromContext(ctx).Info("deposit initiated",
		slog.String("account_id", userAccountID),
		slog.String("deposit_id", d.ID),
		slog.Uint64("amount", amount),
	)
	return d, nil
}

// Complete settles a pending deposit. Admin only. The fee is split off the
// gross amount, the net credited to the user's vault holding, and the fee
// credited to the fee holding; all three legs commit atomically or not at
// all.
func (s *DepositService) Complete(ctx context.Context, callerAccountID, userAccountID, referenceID string) (domain.FiatDeposit, error) {
	l := slogx.FromContext(ctx)

	cfg, err := requireAdmin(ctx, s.Store, callerAccountID)
	if err != nil {
		return domain.FiatDeposit{}, err
	}

	var settled domain.FiatDeposit
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		d, err := tx.Deposits().GetDeposit(ctx, userAccountID, referenceID)
		if err != nil {
			return err
		}
		if d.Status != domain.DepositPending {
			return ErrInvalidDepositStatus
		}

		vault, err := tx.Vaults().GetVaultByOwner(ctx, d.UserAccountID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidVaultOwner
			}
			return err
		}

		fee, net := feeSplit(d.Amount, cfg.FeeBasisPoints)
		configID := protocolHolderID(cfg)

		// Treasury pays the full gross amount.
		if err := debit(ctx, tx, domain.HolderTreasury, configID, d.TokenID, d.Amount); err != nil {
			return err
		}
		if err := credit(ctx, tx, domain.HolderVault, vault.ID, d.TokenID, net); err != nil {
			return err
		}
		if err := credit(ctx, tx, domain.HolderFee, configID, d.TokenID, fee); err != nil {
			return err
		}

		completedAt := time.Now().UTC()
		if err := tx.Deposits().MarkDepositCompleted(ctx, d.ID, fee, completedAt); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidDepositStatus
			}
			return err
		}

		settled = d
		settled.Status = domain.DepositCompleted
		settled.FeeAmount = fee
		settled.CompletedAt = &completedAt
		return nil
	})
	if err != nil {
		return domain.FiatDeposit{}, err
	}

	l.Info("deposit completed",
		slog.String("deposit_id", settled.ID),
		slog.Uint64("amount", settled.Amount),
		slog.Uint64("fee", settled.FeeAmount),
	)
	return settled, nil
}

func (s *DepositService) Get(ctx context.Context, userAccountID, referenceID string) (domain.FiatDeposit, error) {
	return s.Store.Deposits().GetDeposit(ctx, userAccountID, referenceID)
}

func (s *DepositService) ListByUser(ctx context.Context, userAccountID string) ([]domain.FiatDeposit, error) {
	return s.Store.Deposits().ListDepositsByUser(ctx, userAccountID)
}
