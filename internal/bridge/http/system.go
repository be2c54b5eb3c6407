package http

import (
	"net/http"
	"time"

	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/pkg/bridgesdk"
	"github.com/statefi/bridge/pkg/httpx"
	"github.com/statefi/bridge/pkg/jwtx"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	bridgesdk.JWKSResponse
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bridgesdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, bridgesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks database connectivity and signing key availability.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bridgesdk.HealthResponse
//	@Failure		503	{object}	bridgesdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &bridgesdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, bridgesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
