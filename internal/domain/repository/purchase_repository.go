package repository

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the interface for purchase persistence operations.
// Purchases are the entitlement records produced by checkout and are never
// mutated after creation.
type PurchaseRepository interface {
	// CreatePurchase persists a new purchase record.
	CreatePurchase(ctx context.Context, purchase *entity.Purchase) error

	// FindPurchasesByUserID retrieves all purchases ever made by a user.
	FindPurchasesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)

	// FindPurchasesByUserAndMovie retrieves all purchases a user made for a specific movie.
	FindPurchasesByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) ([]*entity.Purchase, error)
}
