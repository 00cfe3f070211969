package repository

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart lookup matches no record.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item lookup matches no record.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart persistence operations.
// A cart holds at most one item per product, enforced by a unique
// constraint on (cart_id, product_id).
type CartRepository interface {
	// CreateCart persists a new cart, anonymous or user-owned.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByID retrieves a cart with its items by the cart's unique ID.
	FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// FindCartByOwnerID retrieves the cart owned by a specific user.
	FindCartByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// ClaimCart assigns ownership of an anonymous cart to a user.
	ClaimCart(ctx context.Context, cartID, ownerID uuid.UUID) error

	// DeleteCart removes a cart and all of its items.
	DeleteCart(ctx context.Context, id uuid.UUID) error

	// CreateCartItem adds an item to a cart.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// UpdateCartItem updates an existing cart item record.
	UpdateCartItem(ctx context.Context, item *entity.CartItem) error

	// DeleteCartItem removes a single item from a cart.
	DeleteCartItem(ctx context.Context, cartID, productID uuid.UUID) error
}
