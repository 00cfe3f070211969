package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the server-side record of an issued refresh token.
// Only the SHA-256 hash of the token is stored. Revoked marks tokens
// consumed by rotation, invalidated by logout, or killed after a reuse
// incident.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	Revoked   bool      `json:"revoked"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the token record is past its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
