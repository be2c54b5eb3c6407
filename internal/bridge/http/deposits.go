package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type DepositsHandler struct {
	DepositService *service.DepositService
	AuthService    *service.AuthService
}

// HandleInitiate announces an inbound fiat payment.
//
//	@Summary		Initiate a fiat deposit
//	@Description	Records a pending deposit against a whitelisted token. The reference must be unique per account and at most 100 characters.
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bridgesdk.InitiateDepositRequest	true	"Deposit details"
//	@Success		201		{object}	bridgesdk.DepositResponse
//	@Failure		400		{object}	bridgesdk.ErrorResponse	"Zero amount or over-long reference"
//	@Failure		409		{object}	bridgesdk.ErrorResponse	"Reference already used"
//	@Router			/v1/deposits [post].
func (h *DepositsHandler) HandleInitiate(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.InitiateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	d, err := h.DepositService.Initiate(r.Context(), accountID, req.TokenID, req.Amount, req.ReferenceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toDepositResponse(d))
}

// HandleList returns the caller's deposits.
//
//	@Summary	List own deposits
//	@Tags		Deposits
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	bridgesdk.DepositResponse
//	@Router		/v1/deposits [get].
func (h *DepositsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	deposits, err := h.DepositService.ListByUser(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]bridgesdk.DepositResponse, len(deposits))
	for i, d := range deposits {
		out[i] = toDepositResponse(d)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one of the caller's deposits by reference.
//
//	@Summary	Get a deposit
//	@Tags		Deposits
//	@Produce	json
//	@Security	BearerAuth
//	@Param		reference	path		string	true	"Deposit reference"
//	@Success	200			{object}	bridgesdk.DepositResponse
//	@Failure	404			{object}	bridgesdk.ErrorResponse
//	@Router		/v1/deposits/{reference} [get].
func (h *DepositsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	d, err := h.DepositService.Get(r.Context(), accountID, r.PathValue("reference"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDepositResponse(d))
}

// HandleComplete settles a pending deposit. Operator only; requires the
// X-Operator-Code header when the admin has TOTP enabled.
//
//	@Summary		Complete a fiat deposit
//	@Description	Moves tokens from the treasury into the user's vault minus the protocol fee, atomically, and marks the deposit completed.
//	@Tags			Operator
//	@Produce		json
//	@Security		BearerAuth
//	@Param			accountID		path		string	true	"Depositing account ID"
//	@Param			reference		path		string	true	"Deposit reference"
//	@Param			X-Operator-Code	header		string	false	"TOTP code, required when enabled"
//	@Success		200				{object}	bridgesdk.DepositResponse
//	@Failure		403				{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		409				{object}	bridgesdk.ErrorResponse	"Deposit is not pending"
//	@Failure		422				{object}	bridgesdk.ErrorResponse	"Insufficient treasury or missing vault"
//	@Router			/v1/operator/deposits/{accountID}/{reference}/complete [post].
func (h *DepositsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	if err := h.AuthService.VerifyOperatorCode(r.Context(), callerID, r.Header.Get("X-Operator-Code")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	d, err := h.DepositService.Complete(r.Context(), callerID, r.PathValue("accountID"), r.PathValue("reference"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDepositResponse(d))
}
