package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitByIP(t *testing.T) {
	t.Parallel()

	config := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}

	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		RateLimitByIP(config),
	)

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)
	require.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)

	rec := do("10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	// A different client is unaffected.
	require.Equal(t, http.StatusOK, do("10.0.0.2:1234").Code)
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	t.Run("remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.5:55000"
		require.Equal(t, "192.168.1.5", IPKeyExtractor(req))
	})

	t.Run("x-forwarded-for takes first hop", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		require.Equal(t, "203.0.113.9", IPKeyExtractor(req))
	})

	t.Run("x-real-ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.10")
		require.Equal(t, "203.0.113.10", IPKeyExtractor(req))
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TEST_BURST", "bogus")

	config := ParseRateLimitFromEnv("TEST", defaults)
	require.Equal(t, 50, config.RequestsPerWindow)
	require.Equal(t, 30*time.Second, config.Window)
	require.Equal(t, 10, config.Burst)
}
