package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyRole      ctxKey = "role"
	CtxKeyScopes    ctxKey = "scopes"
)

// AccountIDFromCtx returns the authenticated account ID, or "" when the
// request was not authenticated.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
