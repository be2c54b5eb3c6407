package http

import (
	"net/http"

	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

// HandleRegister creates a new user account.
//
//	@Summary		Register a bridge account
//	@Description	Creates a user-role account and returns its API key. The key is shown exactly once; only its hash is stored.
//	@Tags			Accounts
//	@Produce		json
//	@Success		201	{object}	bridgesdk.RegisterAccountResponse
//	@Failure		409	{object}	bridgesdk.ErrorResponse	"Protocol not bootstrapped"
//	@Router			/v1/accounts [post].
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	acct, apiKey, err := h.AccountService.Register(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bridgesdk.RegisterAccountResponse{
		AccountID: acct.ID,
		APIKey:    apiKey,
	})
}
