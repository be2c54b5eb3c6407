package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope lets the request through when the caller holds at least
// one of the listed scopes.
func RequireAnyScope(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, s := range required {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range scopesFromCtx(r.Context()) {
				if _, ok := want[s]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeBearerScopeError(w, required...)
		})
	}
}

// RFC 6750-compliant error response for insufficient_scope.
func writeBearerScopeError(w http.ResponseWriter, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_scope"))
}
