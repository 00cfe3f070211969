package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "marquee/internal/domain/errors"
)

// PurchaseKind is how a product enters the cart, either a permanent
// purchase or a time limited rental.
type PurchaseKind string

const (
	// PurchaseKindBuy grants a permanent entitlement.
	PurchaseKindBuy PurchaseKind = "BUY"
	// PurchaseKindRent grants an entitlement that expires after the
	// configured rental window.
	PurchaseKindRent PurchaseKind = "RENT"
)

// ParsePurchaseKind validates a raw kind string from the outside world.
func ParsePurchaseKind(raw string) (PurchaseKind, error) {
	switch PurchaseKind(raw) {
	case PurchaseKindBuy:
		return PurchaseKindBuy, nil
	case PurchaseKindRent:
		return PurchaseKindRent, nil
	default:
		return "", domainerrors.ErrBadRequest.WrapMessage("unknown purchase kind: " + raw)
	}
}

// Cart holds items a visitor intends to buy. OwnerID is nil for
// anonymous session carts and set once a logged-in user claims it.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsOwnedBy reports whether the cart belongs to the given user.
func (c *Cart) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

// FindItem returns the item for a product, or nil if absent.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

// CartItem is a single product line inside a cart. A cart holds at most
// one item per product.
type CartItem struct {
	ID        uuid.UUID    `json:"id"`
	CartID    uuid.UUID    `json:"cart_id"`
	ProductID uuid.UUID    `json:"product_id"`
	Kind      PurchaseKind `json:"kind"`
	Selected  bool         `json:"selected"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
