package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin guards administrative operations with an explicit
// capability check at the start of each call.
func requireAdmin(principal entity.Principal) error {
	if !principal.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("admin role required")
	}

	return nil
}

// ListMovies returns the whole catalog.
func (srv *catalogService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatalogRepo().ListMovies(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list movies")
		}
		movies = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list movies", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list movies")
	}

	return movies, nil
}

// GetMovie returns a movie together with its sellable products.
func (srv *catalogService) GetMovie(ctx context.Context, movieID uuid.UUID) (*entity.Movie, []*entity.Product, error) {
	var movie *entity.Movie
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		found, err := catalogRepo.FindMovieByID(ctx, movieID)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("movie not found")
			}

			return errors.Wrap(err, "failed to find movie")
		}
		movie = found

		products, err = catalogRepo.ListProductsByMovieID(ctx, movieID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get movie", slog.Any("error", err), slog.Any("movie_id", movieID))

		return nil, nil, errors.Wrap(err, "failed to get movie")
	}

	return movie, products, nil
}

// GetProduct returns a single sellable product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatalogRepo().FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get product", slog.Any("error", err), slog.Any("product_id", productID))

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateMovie adds a movie to the catalog.
func (srv *catalogService) CreateMovie(ctx context.Context, principal entity.Principal, input usecase.CreateMovieInput) (*entity.Movie, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Creating movie", slog.String("title", input.Title))

	movie := &entity.Movie{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CatalogRepo().CreateMovie(ctx, movie); err != nil {
			return errors.Wrap(err, "failed to create movie")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create movie", slog.Any("error", err), slog.String("title", input.Title))

		return nil, errors.Wrap(err, "failed to create movie")
	}
	srv.log(ctx).Debug("Movie created", slog.Any("movie_id", movie.ID))

	return movie, nil
}

// UpdateMovie rewrites a movie's metadata.
func (srv *catalogService) UpdateMovie(ctx context.Context, principal entity.Principal, input usecase.UpdateMovieInput) (*entity.Movie, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	var movie *entity.Movie

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		found, err := catalogRepo.FindMovieByID(ctx, input.MovieID)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("movie not found")
			}

			return errors.Wrap(err, "failed to find movie")
		}

		found.Title = input.Title
		found.Description = input.Description
		found.ReleaseYear = input.ReleaseYear
		if err := catalogRepo.UpdateMovie(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update movie")
		}
		movie = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update movie", slog.Any("error", err), slog.Any("movie_id", input.MovieID))

		return nil, errors.Wrap(err, "failed to update movie")
	}

	return movie, nil
}

// DeleteMovie removes a movie and its products from the catalog.
func (srv *catalogService) DeleteMovie(ctx context.Context, principal entity.Principal, movieID uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	srv.log(ctx).Info("Deleting movie", slog.Any("movie_id", movieID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		if _, err := catalogRepo.FindMovieByID(ctx, movieID); err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("movie not found")
			}

			return errors.Wrap(err, "failed to find movie")
		}

		if err := catalogRepo.DeleteMovie(ctx, movieID); err != nil {
			return errors.Wrap(err, "failed to delete movie")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete movie", slog.Any("error", err), slog.Any("movie_id", movieID))

		return errors.Wrap(err, "failed to delete movie")
	}

	return nil
}

// CreateProduct attaches a sellable product to a movie.
func (srv *catalogService) CreateProduct(ctx context.Context, principal entity.Principal, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:        uuid.New(),
		MovieID:   input.MovieID,
		Name:      input.Name,
		BuyPrice:  input.BuyPrice,
		RentPrice: input.RentPrice,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		// A product must hang off an existing movie.
		if _, err := catalogRepo.FindMovieByID(ctx, input.MovieID); err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("movie not found")
			}

			return errors.Wrap(err, "failed to find movie")
		}

		if err := catalogRepo.CreateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.Any("movie_id", input.MovieID))

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Debug("Product created", slog.Any("product_id", product.ID))

	return product, nil
}

// UpdateProduct rewrites a product's offer.
func (srv *catalogService) UpdateProduct(ctx context.Context, principal entity.Principal, input usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		found, err := catalogRepo.FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		found.Name = input.Name
		found.BuyPrice = input.BuyPrice
		found.RentPrice = input.RentPrice
		if err := catalogRepo.UpdateProduct(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("product_id", input.ProductID))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		if _, err := catalogRepo.FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := catalogRepo.DeleteProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.Any("product_id", productID))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
