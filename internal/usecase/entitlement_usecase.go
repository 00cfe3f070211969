// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchDecision is the result of an entitlement check. ExpiresAt is set
// only when access comes from a rental, so clients can show a countdown.
type WatchDecision struct {
	Allowed   bool
	ExpiresAt *time.Time
}

// EntitlementUsecase defines the interface for playback entitlement operations.
type EntitlementUsecase interface {
	// CanWatch reports whether the principal may watch the movie right now.
	// Admins always may. A user with no purchase record for the movie is
	// simply not allowed, it is not an error.
	CanWatch(ctx context.Context, principal entity.Principal, movieID uuid.UUID) (*WatchDecision, error)

	// ListActivePurchases returns the user's currently active purchases for
	// one movie. It fails with a not-found error only when the user never
	// purchased the movie at all. If every purchase has expired it returns
	// an empty list.
	ListActivePurchases(ctx context.Context, userID, movieID uuid.UUID) ([]*entity.Purchase, error)

	// ListActiveMovies returns one movie per distinct title the user can
	// currently watch. A movie both bought and rented appears once.
	ListActiveMovies(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error)
}
