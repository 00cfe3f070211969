// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// RentalPolicy fixes the entitlement window granted to RENT purchases at
// checkout time. Every rental in an order snapshots this duration.
type RentalPolicy struct {
	Duration time.Duration
}

// OrderUsecase defines the interface for checkout and order history operations.
type OrderUsecase interface {
	// PlaceOrder converts the user's cart into an immutable order with one
	// purchase per cart item and deletes the cart. The whole conversion is
	// atomic: either every purchase is created and the cart is gone, or
	// nothing changes.
	PlaceOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// GetOrder retrieves a single order owned by the user.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves the user's order history, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
