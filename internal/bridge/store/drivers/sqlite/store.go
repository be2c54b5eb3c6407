package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/statefi/bridge/internal/bridge/store"
	_ "modernc.org/sqlite"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repos need, so the same
// repo code runs inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts       { return &accountsRepo{db: s.db} }
func (s *Store) Protocol() store.Protocol       { return &protocolRepo{db: s.db} }
func (s *Store) Profiles() store.Profiles       { return &profilesRepo{db: s.db} }
func (s *Store) Vaults() store.Vaults           { return &vaultsRepo{db: s.db} }
func (s *Store) Tokens() store.Tokens           { return &tokensRepo{db: s.db} }
func (s *Store) Holdings() store.Holdings       { return &holdingsRepo{db: s.db} }
func (s *Store) Deposits() store.Deposits       { return &depositsRepo{db: s.db} }
func (s *Store) Withdrawals() store.Withdrawals { return &withdrawalsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates sqlite unique violations into the store sentinel.
// modernc.org/sqlite does not expose typed constraint errors, so we match
// the message.
func mapConstraint(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

// Balances are uint64 in the domain but sqlite INTEGER is signed; values
// are bit-cast on the way in and out.
func toDBAmount(v uint64) int64 { return int64(v) }

func fromDBAmount(v int64) uint64 { return uint64(v) }
