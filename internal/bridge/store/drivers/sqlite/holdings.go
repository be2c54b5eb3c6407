package sqlite

import (
	"context"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type holdingsRepo struct {
	db dbtx
}

func (r *holdingsRepo) CreateHolding(ctx context.Context, h domain.Holding) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO holdings (id, holder_kind, holder_id, token_id, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID, string(h.HolderKind), h.HolderID, h.TokenID, toDBAmount(h.Balance), now, now,
	)
	return mapConstraint(err)
}

func (r *holdingsRepo) GetHolding(ctx context.Context, kind domain.HolderKind, holderID, tokenID string) (domain.Holding, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, holder_kind, holder_id, token_id, balance, created_at, updated_at
		FROM holdings WHERE holder_kind = ? AND holder_id = ? AND token_id = ?`,
		string(kind), holderID, tokenID,
	)

	var (
		h       domain.Holding
		kindStr string
		balance int64
	)
	err := row.Scan(&h.ID, &kindStr, &h.HolderID, &h.TokenID, &balance, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.Holding{}, mapNotFound(err)
	}
	h.HolderKind = domain.HolderKind(kindStr)
	h.Balance = fromDBAmount(balance)
	return h, nil
}

func (r *holdingsRepo) ListHoldingsByHolder(ctx context.Context, kind domain.HolderKind, holderID string) ([]domain.Holding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, holder_kind, holder_id, token_id, balance, created_at, updated_at
		FROM holdings WHERE holder_kind = ? AND holder_id = ?
		ORDER BY created_at ASC, id ASC`,
		string(kind), holderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Holding
	for rows.Next() {
		var (
			h       domain.Holding
			kindStr string
			balance int64
		)
		if err := rows.Scan(&h.ID, &kindStr, &h.HolderID, &h.TokenID, &balance, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		h.HolderKind = domain.HolderKind(kindStr)
		h.Balance = fromDBAmount(balance)
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *holdingsRepo) SetHoldingBalance(ctx context.Context, holdingID string, balance uint64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE holdings SET balance = ?, updated_at = ? WHERE id = ?`,
		toDBAmount(balance), time.Now().UTC(), holdingID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
