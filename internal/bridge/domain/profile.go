package domain

import "time"

// Field length limits for profile registration.
const (
	MaxProfileNameLen  = 50
	MaxProfileEmailLen = 100
)

type UserProfile struct {
	ID             string
	Address        string // deterministic, derived from the owner account ID
	OwnerAccountID string
	Name           string
	Email          string
	KYCVerified    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
