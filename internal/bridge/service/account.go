package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/slogx"
)

type AccountService struct {
	Store store.Store
}

// Register creates a user-role account and returns its credentials. The
// API key is returned exactly once; only the argon2 hash is stored.
func (s *AccountService) Register(ctx context.Context) (domain.Account, string, error) {
	l := slogx.FromContext(ctx)

	if _, err := config(ctx, s.Store); err != nil {
		return domain.Account{}, "", err
	}

	apiKey, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate api key", slog.Any("error", err))
		return domain.Account{}, "", errors.New("failed to generate api key")
	}

	apiKeyHash, err := cryptox.HashAPIKey(apiKey)
	if err != nil {
		l.Error("failed to hash api key", slog.Any("error", err))
		return domain.Account{}, "", errors.New("failed to hash api key")
	}

	acct := domain.Account{
		ID:         idx.New().String(),
		APIKeyHash: apiKeyHash,
		Role:       domain.RoleUser,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, acct); err != nil {
		return domain.Account{}, "", err
	}

	l.Info("account registered", slog.String("account_id", acct.ID))
	return acct, apiKey, nil
}

func (s *AccountService) Get(ctx context.Context, accountID string) (domain.Account, error) {
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}
