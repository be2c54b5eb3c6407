package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type withdrawalsRepo struct {
	db dbtx
}

const withdrawalColumns = `id, address, user_account_id, token_id, amount, reference_id, status, initiated_at, completed_at, created_at, updated_at`

func (r *withdrawalsRepo) CreateWithdrawal(ctx context.Context, w domain.FiatWithdrawal) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fiat_withdrawals (`+withdrawalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		w.ID, w.Address, w.UserAccountID, w.TokenID,
		toDBAmount(w.Amount), w.ReferenceID, string(w.Status),
		w.InitiatedAt, now, now,
	)
	return mapConstraint(err)
}

func (r *withdrawalsRepo) GetWithdrawal(ctx context.Context, userAccountID, tokenID, referenceID string) (domain.FiatWithdrawal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+withdrawalColumns+`
		FROM fiat_withdrawals WHERE user_account_id = ? AND token_id = ? AND reference_id = ?`,
		userAccountID, tokenID, referenceID,
	)
	return scanWithdrawal(row.Scan)
}

func (r *withdrawalsRepo) ListWithdrawalsByUser(ctx context.Context, userAccountID string) ([]domain.FiatWithdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+withdrawalColumns+`
		FROM fiat_withdrawals WHERE user_account_id = ?
		ORDER BY created_at DESC, id DESC`,
		userAccountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWithdrawals(rows)
}

func (r *withdrawalsRepo) MarkWithdrawalCompleted(ctx context.Context, withdrawalID string, completedAt time.Time) error {
	return r.finalize(ctx, withdrawalID, domain.WithdrawalCompleted, completedAt)
}

func (r *withdrawalsRepo) MarkWithdrawalCancelled(ctx context.Context, withdrawalID string, cancelledAt time.Time) error {
	return r.finalize(ctx, withdrawalID, domain.WithdrawalCancelled, cancelledAt)
}

// finalize is status-guarded: only a pending row can transition, so a
// completion and a cancellation racing each other cannot both succeed.
func (r *withdrawalsRepo) finalize(ctx context.Context, withdrawalID string, to domain.WithdrawalStatus, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE fiat_withdrawals
		SET status = ?, completed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		string(to), at, time.Now().UTC(), withdrawalID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *withdrawalsRepo) ListStalePendingWithdrawals(ctx context.Context, cutoff time.Time) ([]domain.FiatWithdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+withdrawalColumns+`
		FROM fiat_withdrawals WHERE status = 'pending' AND initiated_at < ?
		ORDER BY initiated_at ASC`,
		cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWithdrawals(rows)
}

func scanWithdrawal(scan func(...any) error) (domain.FiatWithdrawal, error) {
	var (
		w           domain.FiatWithdrawal
		amount      int64
		status      string
		completedAt sql.NullTime
	)
	err := scan(
		&w.ID, &w.Address, &w.UserAccountID, &w.TokenID,
		&amount, &w.ReferenceID, &status,
		&w.InitiatedAt, &completedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return domain.FiatWithdrawal{}, mapNotFound(err)
	}
	w.Amount = fromDBAmount(amount)
	w.Status = domain.WithdrawalStatus(status)
	w.CompletedAt = mapNullTimePtr(completedAt)
	return w, nil
}

func collectWithdrawals(rows *sql.Rows) ([]domain.FiatWithdrawal, error) {
	var out []domain.FiatWithdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
