package bridgesdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/statefi/bridge/pkg/httpx"
)

// Error codes returned by the bridge API.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeInvalidAmount     = "invalid_amount"
	ErrorCodeInvalidStatus     = "invalid_status"
	ErrorCodeInsufficientFunds = "insufficient_funds"
	ErrorCodeTokenNotActive    = "token_not_active"
	ErrorCodeTOTPRequired      = "totp_required"
	ErrorCodeServerError       = "server_error"
)

// APIError is the typed form of the bridge error envelope. It implements
// the error interface and is used both by the server to write responses
// and by the SDK client to surface them.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}
