package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("protocol already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService performs the one-time protocol initialisation: it
// creates the admin account, writes the singleton config with the fee rate
// and the address derivation salt, and hands back the admin API key.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	_, err := s.Store.Protocol().GetConfig(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req domain.BootstrapData) (domain.BootstrapResult, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped protocol")
		return domain.BootstrapResult{}, ErrBootstrapAlready
	}

	// 2. Validate provided token
	if token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return domain.BootstrapResult{}, ErrBootstrapUnauthorized
	}

	// 3. Validate the fee rate
	if req.FeeBasisPoints > domain.MaxFeeBasisPoints {
		return domain.BootstrapResult{}, ErrInvalidFeeBasisPoints
	}

	// 4. Mint the admin credentials
	apiKey, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate admin api key", slog.Any("error", err))
		return domain.BootstrapResult{}, errors.New("failed to generate admin api key")
	}

	apiKeyHash, err := cryptox.HashAPIKey(apiKey)
	if err != nil {
		l.Error("failed to hash admin api key", slog.Any("error", err))
		return domain.BootstrapResult{}, errors.New("failed to hash admin api key")
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return domain.BootstrapResult{}, err
	}

	// 5. Create the admin account and config in a transaction
	adminID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, domain.Account{
			ID:         adminID,
			APIKeyHash: apiKeyHash,
			Role:       domain.RoleAdmin,
		}); err != nil {
			l.Error("failed to create admin account", slog.Any("error", err))
			return err
		}

		if err := tx.Protocol().CreateConfig(ctx, domain.ProtocolConfig{
			AdminAccountID: adminID,
			FeeBasisPoints: req.FeeBasisPoints,
			AddressSalt:    salt,
		}); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrBootstrapAlready
			}
			l.Error("failed to create protocol config", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.BootstrapResult{}, err
	}

	l.Info("protocol bootstrapped",
		slog.String("admin_account_id", adminID),
		slog.Int("fee_basis_points", int(req.FeeBasisPoints)),
	)

	return domain.BootstrapResult{
		AdminAccountID: adminID,
		AdminAPIKey:    apiKey,
		FeeBasisPoints: req.FeeBasisPoints,
	}, nil
}

// config fetches the singleton config, translating a missing row into
// ErrNotBootstrapped for the service layer.
func config(ctx context.Context, s store.Store) (domain.ProtocolConfig, error) {
	cfg, err := s.Protocol().GetConfig(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProtocolConfig{}, ErrNotBootstrapped
	}
	return cfg, err
}

// requireAdmin enforces the admin invariant: the caller must be the account
// recorded in the protocol config, not merely hold an operator scope.
func requireAdmin(ctx context.Context, s store.Store, callerAccountID string) (domain.ProtocolConfig, error) {
	cfg, err := config(ctx, s)
	if err != nil {
		return domain.ProtocolConfig{}, err
	}
	if cfg.AdminAccountID != callerAccountID {
		return domain.ProtocolConfig{}, ErrUnauthorized
	}
	return cfg, nil
}
