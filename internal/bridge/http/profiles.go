package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

// HandleCreate registers the caller's profile.
//
//	@Summary		Create a user profile
//	@Description	One profile per account. Name is limited to 50 characters, email to 100.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bridgesdk.CreateProfileRequest	true	"Profile details"
//	@Success		201		{object}	bridgesdk.ProfileResponse
//	@Failure		400		{object}	bridgesdk.ErrorResponse	"Field too long or bad body"
//	@Failure		409		{object}	bridgesdk.ErrorResponse	"Profile already exists"
//	@Router			/v1/profiles [post].
func (h *ProfilesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	p, err := h.ProfileService.Create(r.Context(), accountID, req.Name, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProfileResponse(p))
}

// HandleGetMe returns the caller's profile.
//
//	@Summary	Get own profile
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	bridgesdk.ProfileResponse
//	@Failure	404	{object}	bridgesdk.ErrorResponse
//	@Router		/v1/profiles/me [get].
func (h *ProfilesHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	p, err := h.ProfileService.GetByOwner(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleSetKYC flips a profile's verification flag. Operator only.
//
//	@Summary		Set KYC verification
//	@Description	Records the outcome of an off-ledger verification for the given account's profile.
//	@Tags			Profiles
//	@Accept			json
//	@Security		BearerAuth
//	@Param			accountID	path	string					true	"Owner account ID"
//	@Param			request		body	bridgesdk.SetKYCRequest	true	"Verification outcome"
//	@Success		204
//	@Failure		403	{object}	bridgesdk.ErrorResponse	"Caller is not the protocol admin"
//	@Failure		404	{object}	bridgesdk.ErrorResponse	"No profile for that account"
//	@Router			/v1/profiles/{accountID}/kyc [post].
func (h *ProfilesHandler) HandleSetKYC(w http.ResponseWriter, r *http.Request) {
	callerID := httpx.AccountIDFromCtx(r.Context())
	ownerID := r.PathValue("accountID")

	var req bridgesdk.SetKYCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.ProfileService.SetKYCVerified(r.Context(), callerID, ownerID, req.Verified); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
