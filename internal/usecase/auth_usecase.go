// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RotateTokenInput carries the refresh token presented for rotation.
type RotateTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RotateTokenOutput returns the fresh token pair minted by rotation.
type RotateTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user account.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RotateToken consumes a refresh token and mints a successor pair.
	// A revoked token presented here is treated as theft and revokes every
	// session of the owning user.
	RotateToken(ctx context.Context, input RotateTokenInput) (*RotateTokenOutput, error)

	// Logout revokes the presented refresh token, ending that session only.
	Logout(ctx context.Context, input LogoutInput) error

	// ListSessions returns the user's live refresh token records.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// CleanupExpiredTokens garbage-collects token records past expiry and
	// returns how many were removed.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}
