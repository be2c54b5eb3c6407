package domain

import "time"

// Role determines which scopes an account is granted on token issue.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Account struct {
	ID          string
	APIKeyHash  string     // argon2 encoded
	Role        Role
	TOTPSecret  *string    // base32 encoded (nullable)
	TOTPEnabled *time.Time // timestamp when TOTP was enabled (nullable)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
