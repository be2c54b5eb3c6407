package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
)

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, api_key_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.APIKeyHash, string(a.Role), now, now,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, api_key_hash, role, totp_secret, totp_enabled, created_at, updated_at
		FROM accounts WHERE id = ?`,
		id,
	)
	return scanAccount(row)
}

func (r *accountsRepo) UpdateTOTPSecret(ctx context.Context, accountID string, secret string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET totp_secret = ?, updated_at = ? WHERE id = ?`,
		secret, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *accountsRepo) EnableTOTP(ctx context.Context, accountID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET totp_enabled = ?, updated_at = ?
		WHERE id = ? AND totp_secret IS NOT NULL`,
		now, now, accountID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a           domain.Account
		role        string
		totpSecret  sql.NullString
		totpEnabled sql.NullTime
	)
	err := row.Scan(&a.ID, &a.APIKeyHash, &role, &totpSecret, &totpEnabled, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.Role = domain.Role(role)
	a.TOTPSecret = mapNullStringPtr(totpSecret)
	a.TOTPEnabled = mapNullTimePtr(totpEnabled)
	return a, nil
}

// requireRowChanged converts a zero-row UPDATE into ErrNotFound so callers
// can distinguish "missing" from "updated".
func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
