package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type TokensHandler struct {
	RegistryService *service.RegistryService
}

// HandleWhitelist adds a token to the registry. Operator only.
//
//	@Summary		Whitelist a token
//	@Description	Registers a token for bridge custody and opens its treasury and fee holdings. Symbol is limited to 10 characters, name to 50.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bridgesdk.WhitelistTokenRequest	true	"Token details"
//	@Success		201		{object}	bridgesdk.TokenInfoResponse
//	@Failure		403		{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		409		{object}	bridgesdk.ErrorResponse	"Asset already whitelisted"
//	@Router			/v1/tokens [post].
func (h *TokensHandler) HandleWhitelist(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.WhitelistTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	tok, err := h.RegistryService.Whitelist(r.Context(), callerID, req.AssetID, req.Symbol, req.Name, req.IsStable)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTokenResponse(tok))
}

// HandleList returns all whitelisted tokens.
//
//	@Summary	List tokens
//	@Tags		Tokens
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	bridgesdk.TokenInfoResponse
//	@Router		/v1/tokens [get].
func (h *TokensHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.RegistryService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]bridgesdk.TokenInfoResponse, len(tokens))
	for i, t := range tokens {
		out[i] = toTokenResponse(t)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns a single token.
//
//	@Summary	Get a token
//	@Tags		Tokens
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Token ID"
//	@Success	200	{object}	bridgesdk.TokenInfoResponse
//	@Failure	404	{object}	bridgesdk.ErrorResponse
//	@Router		/v1/tokens/{id} [get].
func (h *TokensHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tok, err := h.RegistryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(tok))
}

// HandleSetStatus pauses or resumes withdrawals for a token. Operator only.
//
//	@Summary		Set token status
//	@Description	A paused token rejects new withdrawals; deposits are unaffected.
//	@Tags			Tokens
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string							true	"Token ID"
//	@Param			request	body	bridgesdk.SetTokenStatusRequest	true	"Desired status"
//	@Success		204
//	@Failure		403	{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		404	{object}	bridgesdk.ErrorResponse
//	@Router			/v1/tokens/{id}/status [post].
func (h *TokensHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.SetTokenStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.RegistryService.SetActive(r.Context(), callerID, r.PathValue("id"), req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
