package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the record of a completed checkout.
type Order struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Total     int64      `json:"total"`
	Purchases []Purchase `json:"purchases"`
	CreatedAt time.Time  `json:"created_at"`
}

// Purchase is a single entitlement produced by checkout. RentDuration is
// set only for rentals and is nil for permanent purchases.
type Purchase struct {
	ID           uuid.UUID      `json:"id"`
	OrderID      uuid.UUID      `json:"order_id"`
	UserID       uuid.UUID      `json:"user_id"`
	ProductID    uuid.UUID      `json:"product_id"`
	MovieID      uuid.UUID      `json:"movie_id"`
	Kind         PurchaseKind   `json:"kind"`
	Price        int64          `json:"price"`
	RentDuration *time.Duration `json:"rent_duration,omitempty"`
	PurchasedAt  time.Time      `json:"purchased_at"`
}

// IsActive reports whether the entitlement grants playback at the given
// instant. Purchases never expire. A rental is active strictly before
// purchasedAt plus its duration, so at exactly the expiry instant it is
// already inactive.
func (p *Purchase) IsActive(now time.Time) bool {
	if p.Kind == PurchaseKindBuy {
		return true
	}

	if p.RentDuration == nil {
		return false
	}

	return now.Before(p.PurchasedAt.Add(*p.RentDuration))
}

// ExpiresAt returns the expiry instant for rentals, or nil for purchases.
func (p *Purchase) ExpiresAt() *time.Time {
	if p.Kind == PurchaseKindBuy || p.RentDuration == nil {
		return nil
	}

	t := p.PurchasedAt.Add(*p.RentDuration)

	return &t
}
