package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type TreasuryHandler struct {
	TreasuryService *service.TreasuryService
	AuthService     *service.AuthService
}

// HandleFund credits the treasury float. Operator only.
//
//	@Summary		Fund the treasury
//	@Description	Credits the treasury holding for a whitelisted token so deposits can settle against it.
//	@Tags			Operator
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request			body	bridgesdk.FundTreasuryRequest	true	"Token and amount"
//	@Param			X-Operator-Code	header	string							false	"TOTP code, required when enabled"
//	@Success		204
//	@Failure		403	{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		404	{object}	bridgesdk.ErrorResponse	"Token not whitelisted"
//	@Router			/v1/operator/treasury/fund [post].
func (h *TreasuryHandler) HandleFund(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	if err := h.AuthService.VerifyOperatorCode(r.Context(), callerID, r.Header.Get("X-Operator-Code")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req bridgesdk.FundTreasuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.TreasuryService.Fund(r.Context(), callerID, req.TokenID, req.Amount); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleBalances lists treasury and accrued fee balances. Operator only.
//
//	@Summary	Get treasury balances
//	@Tags		Operator
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	bridgesdk.TreasuryBalancesResponse
//	@Failure	403	{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Router		/v1/operator/treasury [get].
func (h *TreasuryHandler) HandleBalances(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	treasury, fees, err := h.TreasuryService.Balances(r.Context(), callerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bridgesdk.TreasuryBalancesResponse{
		Treasury: toHoldingResponses(treasury),
		Fees:     toHoldingResponses(fees),
	})
}
