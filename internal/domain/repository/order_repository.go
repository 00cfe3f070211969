package repository

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order lookup matches no record.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// CreateOrder persists a new order with its purchases.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its purchases by the order's unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUserID retrieves all orders placed by a user, newest first.
	FindOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
