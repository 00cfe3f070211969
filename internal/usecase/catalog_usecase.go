// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateMovieInput defines the data required to add a movie to the catalog.
type CreateMovieInput struct {
	Title       string
	Description string
	ReleaseYear int
}

// UpdateMovieInput defines a full update of a movie's metadata.
type UpdateMovieInput struct {
	MovieID     uuid.UUID
	Title       string
	Description string
	ReleaseYear int
}

// CreateProductInput defines the data required to attach a sellable
// product to a movie. Prices are in minor currency units.
type CreateProductInput struct {
	MovieID   uuid.UUID
	Name      string
	BuyPrice  int64
	RentPrice int64
}

// UpdateProductInput defines a full update of a product's offer.
type UpdateProductInput struct {
	ProductID uuid.UUID
	Name      string
	BuyPrice  int64
	RentPrice int64
}

// CatalogUsecase defines the interface for catalog browsing and administration.
// Mutating operations require an admin principal.
type CatalogUsecase interface {
	// ListMovies returns the whole catalog.
	ListMovies(ctx context.Context) ([]*entity.Movie, error)

	// GetMovie returns a movie with its products.
	GetMovie(ctx context.Context, movieID uuid.UUID) (*entity.Movie, []*entity.Product, error)

	// GetProduct returns a single sellable product.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// CreateMovie adds a movie to the catalog. Admin only.
	CreateMovie(ctx context.Context, principal entity.Principal, input CreateMovieInput) (*entity.Movie, error)

	// UpdateMovie rewrites a movie's metadata. Admin only.
	UpdateMovie(ctx context.Context, principal entity.Principal, input UpdateMovieInput) (*entity.Movie, error)

	// DeleteMovie removes a movie and its products. Admin only.
	DeleteMovie(ctx context.Context, principal entity.Principal, movieID uuid.UUID) error

	// CreateProduct attaches a sellable product to a movie. Admin only.
	CreateProduct(ctx context.Context, principal entity.Principal, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct rewrites a product's offer. Admin only.
	UpdateProduct(ctx context.Context, principal entity.Principal, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog. Admin only.
	DeleteProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID) error
}
