package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type TokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges an API key for a short-lived access token.
//
//	@Summary		Issue an access token
//	@Description	Exchanges account credentials for an EdDSA-signed JWT. Accounts with TOTP enabled must also supply a code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bridgesdk.TokenRequest	true	"Account credentials"
//	@Success		200		{object}	bridgesdk.TokenResponse
//	@Failure		400		{object}	bridgesdk.ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	bridgesdk.ErrorResponse	"Invalid credentials or TOTP code"
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bridgesdk.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	grant, err := h.AuthService.IssueToken(r.Context(), req.AccountID, req.APIKey, req.TOTPCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bridgesdk.TokenResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		ExpiresIn:   grant.ExpiresIn,
		Scope:       grant.Scope,
	})
}
