package sqlite

import (
	"context"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.UserProfile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (id, address, owner_account_id, name, email, kyc_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Address, p.OwnerAccountID, p.Name, p.Email, p.KYCVerified, now, now,
	)
	return mapConstraint(err)
}

func (r *profilesRepo) GetProfileByOwner(ctx context.Context, ownerAccountID string) (domain.UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, address, owner_account_id, name, email, kyc_verified, created_at, updated_at
		FROM user_profiles WHERE owner_account_id = ?`,
		ownerAccountID,
	)

	var p domain.UserProfile
	err := row.Scan(&p.ID, &p.Address, &p.OwnerAccountID, &p.Name, &p.Email, &p.KYCVerified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) SetKYCVerified(ctx context.Context, ownerAccountID string, verified bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_profiles SET kyc_verified = ?, updated_at = ? WHERE owner_account_id = ?`,
		verified, time.Now().UTC(), ownerAccountID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
