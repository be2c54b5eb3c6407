package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type WithdrawalsHandler struct {
	WithdrawalService *service.WithdrawalService
	AuthService       *service.AuthService
}

// HandleInitiate escrows tokens for a fiat payout.
//
//	@Summary		Initiate a fiat withdrawal
//	@Description	Debits the caller's vault and escrows the amount in the treasury, atomically. The token must be active.
//	@Tags			Withdrawals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bridgesdk.InitiateWithdrawalRequest	true	"Withdrawal details"
//	@Success		201		{object}	bridgesdk.WithdrawalResponse
//	@Failure		400		{object}	bridgesdk.ErrorResponse	"Zero amount or over-long reference"
//	@Failure		409		{object}	bridgesdk.ErrorResponse	"Reference already used"
//	@Failure		422		{object}	bridgesdk.ErrorResponse	"Insufficient balance or paused token"
//	@Router			/v1/withdrawals [post].
func (h *WithdrawalsHandler) HandleInitiate(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.InitiateWithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	wd, err := h.WithdrawalService.Initiate(r.Context(), accountID, req.TokenID, req.Amount, req.ReferenceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWithdrawalResponse(wd))
}

// HandleList returns the caller's withdrawals.
//
//	@Summary	List own withdrawals
//	@Tags		Withdrawals
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	bridgesdk.WithdrawalResponse
//	@Router		/v1/withdrawals [get].
func (h *WithdrawalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	withdrawals, err := h.WithdrawalService.ListByUser(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]bridgesdk.WithdrawalResponse, len(withdrawals))
	for i, wd := range withdrawals {
		out[i] = toWithdrawalResponse(wd)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one of the caller's withdrawals.
//
//	@Summary	Get a withdrawal
//	@Tags		Withdrawals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		tokenID		path		string	true	"Token ID"
//	@Param		reference	path		string	true	"Withdrawal reference"
//	@Success	200			{object}	bridgesdk.WithdrawalResponse
//	@Failure	404			{object}	bridgesdk.ErrorResponse
//	@Router		/v1/withdrawals/{tokenID}/{reference} [get].
func (h *WithdrawalsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	wd, err := h.WithdrawalService.Get(r.Context(), accountID, r.PathValue("tokenID"), r.PathValue("reference"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWithdrawalResponse(wd))
}

// HandleComplete marks a pending withdrawal paid out. Operator only.
//
//	@Summary		Complete a fiat withdrawal
//	@Description	Flips the record to completed; the escrowed tokens remain in the treasury.
//	@Tags			Operator
//	@Produce		json
//	@Security		BearerAuth
//	@Param			accountID		path		string	true	"Withdrawing account ID"
//	@Param			tokenID			path		string	true	"Token ID"
//	@Param			reference		path		string	true	"Withdrawal reference"
//	@Param			X-Operator-Code	header		string	false	"TOTP code, required when enabled"
//	@Success		200				{object}	bridgesdk.WithdrawalResponse
//	@Failure		403				{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		409				{object}	bridgesdk.ErrorResponse	"Withdrawal is not pending"
//	@Router			/v1/operator/withdrawals/{accountID}/{tokenID}/{reference}/complete [post].
func (h *WithdrawalsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	if err := h.AuthService.VerifyOperatorCode(r.Context(), callerID, r.Header.Get("X-Operator-Code")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	wd, err := h.WithdrawalService.Complete(r.Context(), callerID,
		r.PathValue("accountID"), r.PathValue("tokenID"), r.PathValue("reference"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWithdrawalResponse(wd))
}

// HandleCancel refunds a pending withdrawal. Operator only.
//
//	@Summary		Cancel a fiat withdrawal
//	@Description	Returns the exact escrowed amount from the treasury to the user's vault and marks the record cancelled.
//	@Tags			Operator
//	@Produce		json
//	@Security		BearerAuth
//	@Param			accountID		path		string	true	"Withdrawing account ID"
//	@Param			tokenID			path		string	true	"Token ID"
//	@Param			reference		path		string	true	"Withdrawal reference"
//	@Param			X-Operator-Code	header		string	false	"TOTP code, required when enabled"
//	@Success		200				{object}	bridgesdk.WithdrawalResponse
//	@Failure		403				{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		409				{object}	bridgesdk.ErrorResponse	"Withdrawal is not pending"
//	@Router			/v1/operator/withdrawals/{accountID}/{tokenID}/{reference}/cancel [post].
func (h *WithdrawalsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())

	if err := h.AuthService.VerifyOperatorCode(r.Context(), callerID, r.Header.Get("X-Operator-Code")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	wd, err := h.WithdrawalService.Cancel(r.Context(), callerID,
		r.PathValue("accountID"), r.PathValue("tokenID"), r.PathValue("reference"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWithdrawalResponse(wd))
}
