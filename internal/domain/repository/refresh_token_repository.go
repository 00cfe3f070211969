package repository

import (
	"context"
	"time"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// This supports multi-device login, rotation, and remote logout functionality.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	// Revoked and expired records are returned too, so callers can distinguish
	// reuse and expiry from an unknown token.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokensByUserID retrieves all live refresh tokens for a specific user.
	// This allows users to see all their active sessions across different devices.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// RevokeRefreshToken marks a token revoked if and only if it is not
	// revoked yet. It reports whether this call performed the revocation,
	// which makes rotation consumption at-most-once under concurrency.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) (bool, error)

	// RevokeRefreshTokensByUserID revokes every live token of a user.
	// This is used for logout-everywhere and after a reuse incident.
	RevokeRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens removes all tokens that expired before the
	// given instant. This should be called periodically for cleanup.
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}
