package domain

// Scopes embedded in access tokens. Scope checks gate routes; the admin
// invariant itself is enforced in the service layer against the protocol
// config.
const (
	ScopeBridgeRead    = "bridge:read"
	ScopeBridgeWrite   = "bridge:write"
	ScopeOperatorRead  = "operator:read"
	ScopeOperatorWrite = "operator:write"
)

// ScopesForRole returns the scopes granted to a role at token issue.
func ScopesForRole(role Role) []string {
	switch role {
	case RoleAdmin:
		return []string{ScopeBridgeRead, ScopeBridgeWrite, ScopeOperatorRead, ScopeOperatorWrite}
	default:
		return []string{ScopeBridgeRead, ScopeBridgeWrite}
	}
}
