package http

import (
	"encoding/json"
	"net/http"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
	"github.com/statefi/bridge/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the one-time protocol initialisation.
//
//	@Summary		Bootstrap the bridge protocol
//	@Description	Creates the admin account and the protocol configuration (fee rate, address salt). Only available when a bootstrap token is configured, and only usable once.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token for authorization"
//	@Param			request				body		bridgesdk.BootstrapRequest	true	"Protocol configuration"
//	@Success		201					{object}	bridgesdk.BootstrapResponse	"Admin credentials, returned exactly once"
//	@Failure		400					{object}	bridgesdk.ErrorResponse		"Invalid request body or fee rate"
//	@Failure		401					{object}	bridgesdk.ErrorResponse		"Missing or invalid bootstrap token"
//	@Failure		404					{object}	bridgesdk.ErrorResponse		"Bootstrap not enabled (no token configured)"
//	@Failure		409					{object}	bridgesdk.ErrorResponse		"Protocol already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if h.BootstrapService.Token == "" {
		(&bridgesdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        bridgesdk.ErrorCodeNotFound,
			Description: "bootstrap endpoint is not enabled",
		}).WriteError(w)
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		(&bridgesdk.APIError{
			StatusCode:  http.StatusUnauthorized,
			Code:        bridgesdk.ErrorCodeUnauthorized,
			Description: "bootstrap token is required in X-Bootstrap-Token header",
		}).WriteError(w)
		return
	}

	var req bridgesdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.BootstrapData{
		FeeBasisPoints: req.FeeBasisPoints,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	l.Info("bootstrap complete")
	httpx.WriteJSON(w, http.StatusCreated, bridgesdk.BootstrapResponse{
		AdminAccountID: res.AdminAccountID,
		AdminAPIKey:    res.AdminAPIKey,
		FeeBasisPoints: res.FeeBasisPoints,
	})
}
