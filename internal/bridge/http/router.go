package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/statefi/bridge/internal/bridge/domain"
	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/httpx"
	"github.com/statefi/bridge/pkg/jwtx"
	"github.com/statefi/bridge/pkg/slogx"

	_ "github.com/statefi/bridge/api/bridge" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	BootstrapService  *service.BootstrapService
	AccountService    *service.AccountService
	AuthService       *service.AuthService
	ProfileService    *service.ProfileService
	VaultService      *service.VaultService
	RegistryService   *service.RegistryService
	DepositService    *service.DepositService
	WithdrawalService *service.WithdrawalService
	TreasuryService   *service.TreasuryService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfiles()
	r.registerVaults()
	r.registerTokens()
	r.registerDeposits()
	r.registerWithdrawals()
	r.registerOperator()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			StateFi Bridge API
//	@version		0.1.0
//	@description	Custody service bridging fiat payments and tokenised assets: profiles, vaults, a token whitelist, and operator-settled deposit and withdrawal flows.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs verifiable via the JWKS endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with authentication, a scope check, and a
// per-account rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByAccount(limit),
	)
}

func (r *Router) registerAuth() {
	accounts := &AccountsHandler{AccountService: r.AccountService}
	token := &TokenHandler{AuthService: r.AuthService}
	mfa := &MFAHandler{AuthService: r.AuthService}

	// Registration and token exchange are credential endpoints: strict,
	// by IP.
	r.Mux.Handle("POST /v1/accounts",
		httpx.Chain(http.HandlerFunc(accounts.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(token,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/totp/enroll",
		r.secured(mfa.HandleEnroll, httpx.ModerateLimit, domain.ScopeBridgeWrite))
	r.Mux.Handle("POST /v1/auth/totp/verify",
		r.secured(mfa.HandleVerify, httpx.ModerateLimit, domain.ScopeBridgeWrite))
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("POST /v1/profiles",
		r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeBridgeWrite))
	r.Mux.Handle("GET /v1/profiles/me",
		r.secured(h.HandleGetMe, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("POST /v1/profiles/{accountID}/kyc",
		r.secured(h.HandleSetKYC, httpx.ModerateLimit, domain.ScopeOperatorWrite))
}

func (r *Router) registerVaults() {
	h := &VaultsHandler{VaultService: r.VaultService}

	r.Mux.Handle("POST /v1/vaults",
		r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeBridgeWrite))
	r.Mux.Handle("GET /v1/vaults/me",
		r.secured(h.HandleGetMe, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("POST /v1/vaults/holdings",
		r.secured(h.HandleOpenHolding, httpx.ModerateLimit, domain.ScopeBridgeWrite))
}

func (r *Router) registerTokens() {
	h := &TokensHandler{RegistryService: r.RegistryService}

	r.Mux.Handle("POST /v1/tokens",
		r.secured(h.HandleWhitelist, httpx.ModerateLimit, domain.ScopeOperatorWrite))
	r.Mux.Handle("GET /v1/tokens",
		r.secured(h.HandleList, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("GET /v1/tokens/{id}",
		r.secured(h.HandleGet, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("POST /v1/tokens/{id}/status",
		r.secured(h.HandleSetStatus, httpx.ModerateLimit, domain.ScopeOperatorWrite))
}

func (r *Router) registerDeposits() {
	h := &DepositsHandler{DepositService: r.DepositService, AuthService: r.AuthService}

	r.Mux.Handle("POST /v1/deposits",
		r.secured(h.HandleInitiate, httpx.ModerateLimit, domain.ScopeBridgeWrite))
	r.Mux.Handle("GET /v1/deposits",
		r.secured(h.HandleList, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("GET /v1/deposits/{reference}",
		r.secured(h.HandleGet, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("POST /v1/operator/deposits/{accountID}/{reference}/complete",
		r.secured(h.HandleComplete, httpx.ModerateLimit, domain.ScopeOperatorWrite))
}

func (r *Router) registerWithdrawals() {
	h := &WithdrawalsHandler{WithdrawalService: r.WithdrawalService, AuthService: r.AuthService}

	r.Mux.Handle("POST /v1/withdrawals",
		r.secured(h.HandleInitiate, httpx.ModerateLimit, domain.ScopeBridgeWrite))
	r.Mux.Handle("GET /v1/withdrawals",
		r.secured(h.HandleList, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("GET /v1/withdrawals/{tokenID}/{reference}",
		r.secured(h.HandleGet, httpx.LenientLimit, domain.ScopeBridgeRead))
	r.Mux.Handle("POST /v1/operator/withdrawals/{accountID}/{tokenID}/{reference}/complete",
		r.secured(h.HandleComplete, httpx.ModerateLimit, domain.ScopeOperatorWrite))
	r.Mux.Handle("POST /v1/operator/withdrawals/{accountID}/{tokenID}/{reference}/cancel",
		r.secured(h.HandleCancel, httpx.ModerateLimit, domain.ScopeOperatorWrite))
}

func (r *Router) registerOperator() {
	h := &TreasuryHandler{TreasuryService: r.TreasuryService, AuthService: r.AuthService}

	r.Mux.Handle("POST /v1/operator/treasury/fund",
		r.secured(h.HandleFund, httpx.ModerateLimit, domain.ScopeOperatorWrite))
	r.Mux.Handle("GET /v1/operator/treasury",
		r.secured(h.HandleBalances, httpx.ModerateLimit, domain.ScopeOperatorRead))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}

func (r *Router) registerBootstrap() {
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}
