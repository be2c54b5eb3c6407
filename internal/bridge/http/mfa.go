package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type MFAHandler struct {
	AuthService *service.AuthService
}

// HandleEnroll starts TOTP enrolment for the authenticated account.
//
//	@Summary		Enroll TOTP
//	@Description	Generates a TOTP secret and provisioning URL. TOTP activates only after a code is verified.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	bridgesdk.TOTPEnrollResponse
//	@Failure		409	{object}	bridgesdk.ErrorResponse	"TOTP already enabled"
//	@Router			/v1/auth/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	secret, url, err := h.AuthService.EnrollTOTP(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bridgesdk.TOTPEnrollResponse{
		Secret: secret,
		URL:    url,
	})
}

// HandleVerify confirms enrolment and enables TOTP.
//
//	@Summary		Verify TOTP enrolment
//	@Tags			Auth
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	bridgesdk.TOTPVerifyRequest	true	"Authenticator code"
//	@Success		204
//	@Failure		401	{object}	bridgesdk.ErrorResponse	"Invalid code"
//	@Router			/v1/auth/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())

	var req bridgesdk.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.AuthService.VerifyTOTP(r.Context(), accountID, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
