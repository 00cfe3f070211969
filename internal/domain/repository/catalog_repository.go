package repository

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMovieNotFound is returned when a movie lookup matches no record.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrProductNotFound is returned when a product lookup matches no record.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the interface for movie and product persistence operations.
type CatalogRepository interface {
	// CreateMovie persists a new movie.
	CreateMovie(ctx context.Context, movie *entity.Movie) error

	// FindMovieByID retrieves a movie by its unique ID.
	FindMovieByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// FindMoviesByIDs retrieves all movies whose IDs appear in the given set.
	FindMoviesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error)

	// ListMovies retrieves all movies in the catalog.
	ListMovies(ctx context.Context) ([]*entity.Movie, error)

	// UpdateMovie updates an existing movie record.
	UpdateMovie(ctx context.Context, movie *entity.Movie) error

	// DeleteMovie removes a movie and its products from the catalog.
	DeleteMovie(ctx context.Context, id uuid.UUID) error

	// CreateProduct persists a new sellable product for a movie.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs retrieves all products whose IDs appear in the given set.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListProductsByMovieID retrieves all products attached to a movie.
	ListProductsByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct updates an existing product record.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
