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

// WithdrawalService runs the fiat-out flow. Initiation escrows the full
// amount from the user's vault into the treasury; the fiat leg then
// settles off-ledger. Completion only flips the record, cancellation
// refunds the exact escrowed amount.
type WithdrawalService struct {
	Store store.Store
}

// Initiate escrows amount from the caller's vault and records a pending
// withdrawal, atomically. The token must be active.
func (s *WithdrawalService) Initiate(ctx context.Context, userAccountID, tokenID string, amount uint64, referenceID string) (domain.FiatWithdrawal, error) {
	if amount == 0 {
		return domain.FiatWithdrawal{}, ErrInvalidAmount
	}
	if len(referenceID) > domain.MaxReferenceLen {
		return domain.FiatWithdrawal{}, ErrStringTooLong
	}

	cfg, err := config(ctx, s.Store)
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	token, err := s.Store.Tokens().GetTokenByID(ctx, tokenID)
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}
	if !token.IsActive {
		return domain.FiatWithdrawal{}, ErrTokenNotActive
	}

	vault, err := s.Store.Vaults().GetVaultByOwner(ctx, userAccountID)
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	w := domain.FiatWithdrawal{
		ID:            idx.New().String(),
		Address:       cryptox.DeriveAddress(cfg.AddressSalt, "fiat_withdrawal", userAccountID, tokenID, referenceID),
		UserAccountID: userAccountID,
		TokenID:       tokenID,
		Amount:        amount,
		ReferenceID:   referenceID,
		Status:        domain.WithdrawalPending,
		InitiatedAt:   time.Now().UTC(),
	}

	configID := protocolHolderID(cfg)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Escrow before the record exists: if the balance is short,
		// nothing is written.
		if err := debit(ctx, tx, domain.HolderVault, vault.ID, tokenID, amount); err != nil {
			return err
		}
		if err := credit(ctx, tx, domain.HolderTreasury, configID, tokenID, amount); err != nil {
			return err
		}
		if err := tx.Withdrawals().CreateWithdrawal(ctx, w); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateReference
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	slogx.FromContext(ctx).Info("withdrawal initiated",
		slog.String("account_id", userAccountID),
		slog.String("withdrawal_id", w.ID),
		slog.Uint64("amount", amount),
	)
	return w, nil
}

// Complete marks a pending withdrawal paid out. Admin only. The escrowed
// tokens stay in the treasury; no balances move.
func (s *WithdrawalService) Complete(ctx context.Context, callerAccountID, userAccountID, tokenID, referenceID string) (domain.FiatWithdrawal, error) {
	if _, err := requireAdmin(ctx, s.Store, callerAccountID); err != nil {
		return domain.FiatWithdrawal{}, err
	}

	var out domain.FiatWithdrawal
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		w, err := tx.Withdrawals().GetWithdrawal(ctx, userAccountID, tokenID, referenceID)
		if err != nil {
			return err
		}
		if w.Status != domain.WithdrawalPending {
			return ErrInvalidWithdrawalStatus
		}

		completedAt := time.Now().UTC()
		if err := tx.Withdrawals().MarkWithdrawalCompleted(ctx, w.ID, completedAt); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidWithdrawalStatus
			}
			return err
		}

		out = w
		out.Status = domain.WithdrawalCompleted
		out.CompletedAt = &completedAt
		return nil
	})
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	slogx.FromContext(ctx).Info("withdrawal completed", slog.String("withdrawal_id", out.ID))
	return out, nil
}

// Cancel refunds a pending withdrawal: the exact escrowed amount moves
// back from the treasury to the user's vault. Admin only.
func (s *WithdrawalService) Cancel(ctx context.Context, callerAccountID, userAccountID, tokenID, referenceID string) (domain.FiatWithdrawal, error) {
	cfg, err := requireAdmin(ctx, s.Store, callerAccountID)
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	var out domain.FiatWithdrawal
	configID := protocolHolderID(cfg)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		w, err := tx.Withdrawals().GetWithdrawal(ctx, userAccountID, tokenID, referenceID)
		if err != nil {
			return err
		}
		if w.Status != domain.WithdrawalPending {
			return ErrInvalidWithdrawalStatus
		}

		vault, err := tx.Vaults().GetVaultByOwner(ctx, w.UserAccountID)
		if err != nil {
			return err
		}

		if err := debit(ctx, tx, domain.HolderTreasury, configID, w.TokenID, w.Amount); err != nil {
			return err
		}
		if err := credit(ctx, tx, domain.HolderVault, vault.ID, w.TokenID, w.Amount); err != nil {
			return err
		}

		cancelledAt := time.Now().UTC()
		if err := tx.Withdrawals().MarkWithdrawalCancelled(ctx, w.ID, cancelledAt); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidWithdrawalStatus
			}
			return err
		}

		out = w
		out.Status = domain.WithdrawalCancelled
		out.CompletedAt = &cancelledAt
		return nil
	})
	if err != nil {
		return domain.FiatWithdrawal{}, err
	}

	slogx.FromContext(ctx).Info("withdrawal cancelled",
		slog.String("withdrawal_id", out.ID),
		slog.Uint64("refund", out.Amount),
	)
	return out, nil
}

func (s *WithdrawalService) Get(ctx context.Context, userAccountID, tokenID, referenceID string) (domain.FiatWithdrawal, error) {
	return s.Store.Withdrawals().GetWithdrawal(ctx, userAccountID, tokenID, referenceID)
}

func (s *WithdrawalService) ListByUser(ctx context.Context, userAccountID string) ([]domain.FiatWithdrawal, error) {
	return s.Store.Withdrawals().ListWithdrawalsByUser(ctx, userAccountID)
}
