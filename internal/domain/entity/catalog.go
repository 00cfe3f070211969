package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a watchable catalog title.
type Movie struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseYear int       `json:"release_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a sellable offer for a movie. Prices are stored in minor
// currency units to avoid floating point drift in totals.
type Product struct {
	ID        uuid.UUID `json:"id"`
	MovieID   uuid.UUID `json:"movie_id"`
	Name      string    `json:"name"`
	BuyPrice  int64     `json:"buy_price"`
	RentPrice int64     `json:"rent_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceFor returns the product price for the given purchase kind.
func (p *Product) PriceFor(kind PurchaseKind) int64 {
	if kind == PurchaseKindBuy {
		return p.BuyPrice
	}

	return p.RentPrice
}
