package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type depositsRepo struct {
	db dbtx
}

const depositColumns = `id, address, user_account_id, token_id, amount, fee_amount, reference_id, status, initiated_at, completed_at, created_at, updated_at`

func (r *depositsRepo) CreateDeposit(ctx context.Context, d domain.FiatDeposit) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fiat_deposits (`+depositColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		d.ID, d.Address, d.UserAccountID, d.TokenID,
		toDBAmount(d.Amount), toDBAmount(d.FeeAmount),
		d.ReferenceID, string(d.Status), d.InitiatedAt, now, now,
	)
	return mapConstraint(err)
}

func (r *depositsRepo) GetDeposit(ctx context.Context, userAccountID, referenceID string) (domain.FiatDeposit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+depositColumns+`
		FROM fiat_deposits WHERE user_account_id = ? AND reference_id = ?`,
		userAccountID, referenceID,
	)
	return scanDeposit(row.Scan)
}

func (r *depositsRepo) ListDepositsByUser(ctx context.Context, userAccountID string) ([]domain.FiatDeposit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+depositColumns+`
		FROM fiat_deposits WHERE user_account_id = ?
		ORDER BY created_at DESC, id DESC`,
		userAccountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDeposits(rows)
}

// MarkDepositCompleted is status-guarded: the UPDATE only matches a row
// still pending, so concurrent settlements cannot both succeed.
func (r *depositsRepo) MarkDepositCompleted(ctx context.Context, depositID string, feeAmount uint64, completedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE fiat_deposits
		SET status = 'completed', fee_amount = ?, completed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		toDBAmount(feeAmount), completedAt, time.Now().UTC(), depositID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *depositsRepo) ListStalePendingDeposits(ctx context.Context, cutoff time.Time) ([]domain.FiatDeposit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+depositColumns+`
		FROM fiat_deposits WHERE status = 'pending' AND initiated_at < ?
		ORDER BY initiated_at ASC`,
		cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDeposits(rows)
}

func scanDeposit(scan func(...any) error) (domain.FiatDeposit, error) {
	var (
		d           domain.FiatDeposit
		amount      int64
		feeAmount   int64
		status      string
		completedAt sql.NullTime
	)
	err := scan(
		&d.ID, &d.Address, &d.UserAccountID, &d.TokenID,
		&amount, &feeAmount, &d.ReferenceID, &status,
		&d.InitiatedAt, &completedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.FiatDeposit{}, mapNotFound(err)
	}
	d.Amount = fromDBAmount(amount)
	d.FeeAmount = fromDBAmount(feeAmount)
	d.Status = domain.DepositStatus(status)
	d.CompletedAt = mapNullTimePtr(completedAt)
	return d, nil
}

func collectDeposits(rows *sql.Rows) ([]domain.FiatDeposit, error) {
	var out []domain.FiatDeposit
	for rows.Next() {
		d, err := scanDeposit(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
