package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/cryptox"
	"github.com/statefi/bridge/pkg/jwtx"
	"github.com/statefi/bridge/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid account credentials")
	ErrInvalidTOTPCode    = errors.New("invalid TOTP code")
	ErrTOTPRequired       = errors.New("TOTP code required")
	ErrTOTPNotEnabled     = errors.New("TOTP not enabled for this account")
	ErrTOTPAlreadyEnabled = errors.New("TOTP already enabled for this account")
)

// AuthService exchanges API keys for short-lived access tokens and manages
// TOTP enrolment. Accounts with TOTP enabled must present a valid code both
// at token issue and, for the admin, on settlement operations.
type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (s *AuthService) IssueToken(ctx context.Context, accountID, apiKey, totpCode string) (domain.AccessGrant, error) {
	l := slogx.FromContext(ctx)

	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessGrant{}, ErrInvalidCredentials
		}
		return domain.AccessGrant{}, err
	}

	if err := cryptox.VerifyAPIKey(apiKey, acct.APIKeyHash); err != nil {
		l.Warn("api key verification failed", slog.String("account_id", accountID))
		return domain.AccessGrant{}, ErrInvalidCredentials
	}

	if acct.TOTPEnabled != nil {
		if totpCode == "" {
			return domain.AccessGrant{}, ErrTOTPRequired
		}
		if acct.TOTPSecret == nil || !totp.Validate(totpCode, *acct.TOTPSecret) {
			l.Warn("totp validation failed", slog.String("account_id", accountID))
			return domain.AccessGrant{}, ErrInvalidTOTPCode
		}
	}

	scopes := domain.ScopesForRole(acct.Role)
	claims := jwtx.NewAccessClaims(acct.ID, string(acct.Role), scopes, s.TTL, s.Issuer, time.Now())

	signed, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return domain.AccessGrant{}, errors.New("failed to sign access token")
	}

	return domain.AccessGrant{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.TTL / time.Second),
		Scope:       strings.Join(scopes, " "),
	}, nil
}

// EnrollTOTP generates a TOTP secret for the account and returns the
// provisioning URL. This does NOT enable TOTP yet; the account must verify
// a code first.
func (s *AuthService) EnrollTOTP(ctx context.Context, accountID string) (secret, url string, err error) {
	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return "", "", err
	}
	if acct.TOTPEnabled != nil {
		return "", "", ErrTOTPAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: accountID,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", err
	}

	if err := s.Store.Accounts().UpdateTOTPSecret(ctx, accountID, key.Secret()); err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// VerifyTOTP confirms the enrolment code and enables TOTP on the account.
func (s *AuthService) VerifyTOTP(ctx context.Context, accountID, code string) error {
	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.TOTPEnabled != nil {
		return ErrTOTPAlreadyEnabled
	}
	if acct.TOTPSecret == nil {
		return ErrTOTPNotEnabled
	}
	if !totp.Validate(code, *acct.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return s.Store.Accounts().EnableTOTP(ctx, accountID)
}

// VerifyOperatorCode is the settlement second factor. It is a no-op for
// accounts without TOTP enabled.
func (s *AuthService) VerifyOperatorCode(ctx context.Context, accountID, code string) error {
	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.TOTPEnabled == nil {
		return nil
	}
	if code == "" {
		return ErrTOTPRequired
	}
	if acct.TOTPSecret == nil || !totp.Validate(code, *acct.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return nil
}
