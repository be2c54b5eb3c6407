package store

import (
	"context"
	"errors"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and an
// explicit Tx boundary so multi-holding transfers cannot partially apply.
type Store interface {
	Accounts() Accounts
	Protocol() Protocol
	Profiles() Profiles
	Vaults() Vaults
	Tokens() Tokens
	Holdings() Holdings
	Deposits() Deposits
	Withdrawals() Withdrawals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by app via ULID).
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// UpdateTOTPSecret sets the TOTP secret for an account (not yet enabled).
	UpdateTOTPSecret(ctx context.Context, accountID string, secret string) error

	// EnableTOTP marks TOTP as enabled (sets totp_enabled timestamp).
	EnableTOTP(ctx context.Context, accountID string) error
}

type Protocol interface {
	// CreateConfig writes the singleton protocol config. Fails with
	// ErrAlreadyExists if the bridge was already bootstrapped.
	CreateConfig(ctx context.Context, c domain.ProtocolConfig) error

	// GetConfig returns the singleton config, ErrNotFound before bootstrap.
	GetConfig(ctx context.Context) (domain.ProtocolConfig, error)
}

type Profiles interface {
	// CreateProfile inserts a profile. One profile per owner account.
	CreateProfile(ctx context.Context, p domain.UserProfile) error

	// GetProfileByOwner returns the profile owned by an account.
	GetProfileByOwner(ctx context.Context, ownerAccountID string) (domain.UserProfile, error)

	// SetKYCVerified flips the kyc_verified flag and bumps updated_at.
	SetKYCVerified(ctx context.Context, ownerAccountID string, verified bool) error
}

type Vaults interface {
	// CreateVault inserts a vault. One vault per owner account.
	CreateVault(ctx context.Context, v domain.Vault) error

	// GetVaultByOwner returns the vault owned by an account.
	GetVaultByOwner(ctx context.Context, ownerAccountID string) (domain.Vault, error)
}

type Tokens interface {
	// CreateToken inserts a whitelisted token.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetTokenByID returns a token by id.
	GetTokenByID(ctx context.Context, id string) (domain.Token, error)

	// ListTokens returns all whitelisted tokens ordered by creation date.
	ListTokens(ctx context.Context) ([]domain.Token, error)

	// SetTokenActive flips is_active and bumps updated_at.
	SetTokenActive(ctx context.Context, tokenID string, active bool) error
}

type Holdings interface {
	// CreateHolding inserts a holding row, unique per (kind, holder, token).
	CreateHolding(ctx context.Context, h domain.Holding) error

	// GetHolding returns a single holding by its composite key.
	GetHolding(ctx context.Context, kind domain.HolderKind, holderID, tokenID string) (domain.Holding, error)

	// ListHoldingsByHolder returns all holdings for a holder.
	ListHoldingsByHolder(ctx context.Context, kind domain.HolderKind, holderID string) ([]domain.Holding, error)

	// SetHoldingBalance overwrites the balance and bumps updated_at. Callers
	// are expected to hold a transaction across the read-modify-write.
	SetHoldingBalance(ctx context.Context, holdingID string, balance uint64) error
}

type Deposits interface {
	// CreateDeposit inserts a pending deposit. (user, reference) is unique.
	CreateDeposit(ctx context.Context, d domain.FiatDeposit) error

	// GetDeposit returns a deposit by its user and reference.
	GetDeposit(ctx context.Context, userAccountID, referenceID string) (domain.FiatDeposit, error)

	// ListDepositsByUser returns a user's deposits, newest first.
	ListDepositsByUser(ctx context.Context, userAccountID string) ([]domain.FiatDeposit, error)

	// MarkDepositCompleted records the fee split and flips status to
	// completed, guarded on the row still being pending. Returns
	// ErrNotFound if the deposit is missing or no longer pending.
	MarkDepositCompleted(ctx context.Context, depositID string, feeAmount uint64, completedAt time.Time) error

	// ListStalePendingDeposits returns pending deposits initiated before the
	// cutoff, for the stuck-funds monitor.
	ListStalePendingDeposits(ctx context.Context, cutoff time.Time) ([]domain.FiatDeposit, error)
}

type Withdrawals interface {
	// CreateWithdrawal inserts a pending withdrawal.
	// (user, token, reference) is unique.
	CreateWithdrawal(ctx context.Context, w domain.FiatWithdrawal) error

	// GetWithdrawal returns a withdrawal by user, token and reference.
	GetWithdrawal(ctx context.Context, userAccountID, tokenID, referenceID string) (domain.FiatWithdrawal, error)

	// ListWithdrawalsByUser returns a user's withdrawals, newest first.
	ListWithdrawalsByUser(ctx context.Context, userAccountID string) ([]domain.FiatWithdrawal, error)

	// MarkWithdrawalCompleted flips status to completed, guarded on the row
	// still being pending. Returns ErrNotFound if missing or not pending.
	MarkWithdrawalCompleted(ctx context.Context, withdrawalID string, completedAt time.Time) error

	// MarkWithdrawalCancelled flips status to cancelled under the same guard.
	MarkWithdrawalCancelled(ctx context.Context, withdrawalID string, cancelledAt time.Time) error

	// ListStalePendingWithdrawals returns pending withdrawals initiated
	// before the cutoff, for the stuck-funds monitor.
	ListStalePendingWithdrawals(ctx context.Context, cutoff time.Time) ([]domain.FiatWithdrawal, error)
}
