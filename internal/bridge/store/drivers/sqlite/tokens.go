package sqlite

import (
	"context"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, address, asset_id, symbol, name, is_stable, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Address, t.AssetID, t.Symbol, t.Name, t.IsStable, t.IsActive, now, now,
	)
	return mapConstraint(err)
}

func (r *tokensRepo) GetTokenByID(ctx context.Context, id string) (domain.Token, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, address, asset_id, symbol, name, is_stable, is_active, created_at, updated_at
		FROM tokens WHERE id = ?`,
		id,
	)

	var t domain.Token
	err := row.Scan(&t.ID, &t.Address, &t.AssetID, &t.Symbol, &t.Name, &t.IsStable, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tokensRepo) ListTokens(ctx context.Context) ([]domain.Token, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, address, asset_id, symbol, name, is_stable, is_active, created_at, updated_at
		FROM tokens ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Token
	for rows.Next() {
		var t domain.Token
		if err := rows.Scan(&t.ID, &t.Address, &t.AssetID, &t.Symbol, &t.Name, &t.IsStable, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tokensRepo) SetTokenActive(ctx context.Context, tokenID string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tokens SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), tokenID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
