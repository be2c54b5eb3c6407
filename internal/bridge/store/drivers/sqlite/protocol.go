package sqlite

import (
	"context"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type protocolRepo struct {
	db dbtx
}

func (r *protocolRepo) CreateConfig(ctx context.Context, c domain.ProtocolConfig) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO protocol_config (id, admin_account_id, fee_basis_points, address_salt, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)`,
		c.AdminAccountID, int64(c.FeeBasisPoints), c.AddressSalt, now, now,
	)
	return mapConstraint(err)
}

func (r *protocolRepo) GetConfig(ctx context.Context) (domain.ProtocolConfig, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, admin_account_id, fee_basis_points, address_salt, created_at, updated_at
		FROM protocol_config WHERE id = 1`,
	)

	var (
		c   domain.ProtocolConfig
		fee int64
	)
	err := row.Scan(&c.ID, &c.AdminAccountID, &fee, &c.AddressSalt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.ProtocolConfig{}, mapNotFound(err)
	}
	c.FeeBasisPoints = uint16(fee)
	return c, nil
}
