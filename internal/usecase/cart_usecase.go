// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CartRef identifies the cart a request is acting on. Principal is nil
// for anonymous visitors. SessionCartID is the opaque cart identifier
// from the session cookie, nil when the client has no cart yet.
type CartRef struct {
	Principal     *entity.Principal
	SessionCartID *uuid.UUID
}

// AddItemInput defines the data required to add a product to a cart.
type AddItemInput struct {
	ProductID uuid.UUID
	Kind      entity.PurchaseKind
}

// UpdateItemInput defines a partial update of a cart item. Nil fields
// are left untouched.
type UpdateItemInput struct {
	ProductID uuid.UUID
	Kind      *entity.PurchaseKind
	Selected  *bool
}

// --- Output DTOs ---

// CartLine is a cart item joined with its product and movie for display,
// priced at the product's current price for the item's kind.
type CartLine struct {
	Item    entity.CartItem
	Product *entity.Product
	Movie   *entity.Movie
	Price   int64
}

// CartSummary is the effective cart with derived totals. Totals are
// recomputed on every read and never stored.
type CartSummary struct {
	CartID        uuid.UUID
	OwnerID       *uuid.UUID
	Lines         []CartLine
	Total         int64
	SelectedTotal int64
}

// CartUsecase defines the interface for cart reconciliation and line item management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CartUsecase interface {
	// ResolveEffectiveCart merges or adopts the session cart against the
	// principal's cart and returns the single cart this request should use.
	ResolveEffectiveCart(ctx context.Context, ref CartRef) (*entity.Cart, error)

	// GetCart resolves the effective cart and returns it with derived totals.
	GetCart(ctx context.Context, ref CartRef) (*CartSummary, error)

	// AddItem adds a product to the effective cart.
	AddItem(ctx context.Context, ref CartRef, input AddItemInput) (*CartSummary, error)

	// UpdateItem changes the kind or selection of an existing cart item.
	UpdateItem(ctx context.Context, ref CartRef, input UpdateItemInput) (*CartSummary, error)

	// RemoveItem removes a product from the effective cart.
	RemoveItem(ctx context.Context, ref CartRef, productID uuid.UUID) (*CartSummary, error)
}
