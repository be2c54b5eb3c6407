package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the API error
// envelope. Unknown errors are logged and reported as a generic 500 so
// internals never leak to callers.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := mapServiceError(err)
	if apiErr.StatusCode == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("unhandled service error", slog.Any("error", err))
	}
	apiErr.WriteError(w)
}

func mapServiceError(err error) *bridgesdk.APIError {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusForbidden,
			Code:        bridgesdk.ErrorCodeForbidden,
			Description: "caller is not the protocol admin",
		}
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrBootstrapUnauthorized):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnauthorized,
			Code:        bridgesdk.ErrorCodeUnauthorized,
			Description: "invalid credentials",
		}
	case errors.Is(err, service.ErrTOTPRequired):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnauthorized,
			Code:        bridgesdk.ErrorCodeTOTPRequired,
			Description: "a TOTP code is required",
		}
	case errors.Is(err, service.ErrInvalidTOTPCode):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnauthorized,
			Code:        bridgesdk.ErrorCodeUnauthorized,
			Description: "invalid TOTP code",
		}
	case errors.Is(err, service.ErrInvalidAmount):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        bridgesdk.ErrorCodeInvalidAmount,
			Description: "amount must be greater than zero",
		}
	case errors.Is(err, service.ErrStringTooLong):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "a string field exceeds its maximum length",
		}
	case errors.Is(err, service.ErrInvalidFeeBasisPoints):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "fee basis points must not exceed 10000",
		}
	case errors.Is(err, service.ErrInvalidDepositStatus),
		errors.Is(err, service.ErrInvalidWithdrawalStatus):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeInvalidStatus,
			Description: "record is not in a pending state",
		}
	case errors.Is(err, service.ErrDuplicateReference):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeConflict,
			Description: "reference already used",
		}
	case errors.Is(err, service.ErrInsufficientFunds):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        bridgesdk.ErrorCodeInsufficientFunds,
			Description: "insufficient balance",
		}
	case errors.Is(err, service.ErrBalanceOverflow):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "balance would exceed the maximum",
		}
	case errors.Is(err, service.ErrTokenNotActive):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        bridgesdk.ErrorCodeTokenNotActive,
			Description: "token is paused for withdrawals",
		}
	case errors.Is(err, service.ErrInvalidVaultOwner):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "deposit user has no vault",
		}
	case errors.Is(err, service.ErrProfileRequired):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "account has no profile",
		}
	case errors.Is(err, service.ErrTOTPAlreadyEnabled):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeConflict,
			Description: "TOTP already enabled",
		}
	case errors.Is(err, service.ErrTOTPNotEnabled):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        bridgesdk.ErrorCodeInvalidRequest,
			Description: "TOTP enrolment has not started",
		}
	case errors.Is(err, service.ErrNotBootstrapped):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeConflict,
			Description: "protocol has not been bootstrapped",
		}
	case errors.Is(err, service.ErrBootstrapAlready):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeConflict,
			Description: "protocol already bootstrapped",
		}
	case errors.Is(err, store.ErrNotFound):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        bridgesdk.ErrorCodeNotFound,
			Description: "record not found",
		}
	case errors.Is(err, store.ErrAlreadyExists):
		return &bridgesdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        bridgesdk.ErrorCodeConflict,
			Description: "record already exists",
		}
	default:
		return &bridgesdk.APIError{
			StatusCode:  http.StatusInternalServerError,
			Code:        bridgesdk.ErrorCodeServerError,
			Description: "internal error",
		}
	}
}

// writeBadJSON reports an unparseable request body.
func writeBadJSON(w http.ResponseWriter) {
	(&bridgesdk.APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        bridgesdk.ErrorCodeInvalidRequest,
		Description: "request body must be valid JSON",
	}).WriteError(w)
}
