package models

import "time"

// RefreshToken is a stored opaque refresh token bound to one principal.
type RefreshToken struct {
	ID            int64     `json:"id" db:"id"`
	Token         string    `json:"token" db:"token"`
	PrincipalType Role      `json:"principal_type" db:"principal_type"`
	PrincipalID   int64     `json:"principal_id" db:"principal_id"`
	ExpiresAt     time.Time `json:"expires_at" db:"expires_at"`
	Revoked       bool      `json:"revoked" db:"revoked"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
