package sqlite

import (
	"context"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type vaultsRepo struct {
	db dbtx
}

func (r *vaultsRepo) CreateVault(ctx context.Context, v domain.Vault) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaults (id, address, owner_account_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.Address, v.OwnerAccountID, now, now,
	)
	return mapConstraint(err)
}

func (r *vaultsRepo) GetVaultByOwner(ctx context.Context, ownerAccountID string) (domain.Vault, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, address, owner_account_id, created_at, updated_at
		FROM vaults WHERE owner_account_id = ?`,
		ownerAccountID,
	)

	var v domain.Vault
	err := row.Scan(&v.ID, &v.Address, &v.OwnerAccountID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Vault{}, mapNotFound(err)
	}
	return v, nil
}
