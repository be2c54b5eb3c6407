package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type VaultsHandler struct {
	VaultService *service.VaultService
}

// HandleCreate opens the caller's vault.
//
//	@Summary		Create a vault
//	@Description	One vault per account; requires an existing profile.
//	@Tags			Vaults
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	bridgesdk.VaultResponse
//	@Failure		409	{object}	bridgesdk.ErrorResponse	"Vault already exists"
//	@Failure		422	{object}	bridgesdk.ErrorResponse	"Account has no profile"
//	@Router			/v1/vaults [post].
func (h *VaultsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	v, err := h.VaultService.Create(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toVaultResponse(v, nil))
}

// HandleGetMe returns the caller's vault with its holdings.
//
//	@Summary	Get own vault
//	@Tags		Vaults
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	bridgesdk.VaultResponse
//	@Failure	404	{object}	bridgesdk.ErrorResponse
//	@Router		/v1/vaults/me [get].
func (h *VaultsHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	v, holdings, err := h.VaultService.GetByOwner(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVaultResponse(v, holdings))
}

// HandleOpenHolding opens a zero-balance holding for a whitelisted token.
//
//	@Summary		Open a vault holding
//	@Description	Deposits settle only into holdings that exist; open one per token before the first deposit completes.
//	@Tags			Vaults
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bridgesdk.OpenHoldingRequest	true	"Token to hold"
//	@Success		201		{object}	bridgesdk.HoldingResponse
//	@Failure		404		{object}	bridgesdk.ErrorResponse	"Unknown token or no vault"
//	@Failure		409		{object}	bridgesdk.ErrorResponse	"Holding already open"
//	@Router			/v1/vaults/holdings [post].
func (h *VaultsHandler) HandleOpenHolding(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.OpenHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	holding, err := h.VaultService.OpenHolding(r.Context(), accountID, req.TokenID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bridgesdk.HoldingResponse{
		TokenID: holding.TokenID,
		Balance: holding.Balance,
	})
}
