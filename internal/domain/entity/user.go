// Package entity defines the core business objects of the marketplace domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes ordinary customers from catalog administrators.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleAdmin grants catalog management and unrestricted playback.
	RoleAdmin Role = "admin"
)

// User represents a registered account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request after
// token validation. It carries only what authorization decisions need.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the principal may perform administrative operations.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
