package postgres

import (
	"context"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// CreateMovie persists a new movie.
func (repo *catalogRepository) CreateMovie(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Create(movieM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create movie")
	}

	movie.ID = movieM.ID
	movie.CreatedAt = movieM.CreatedAt
	movie.UpdatedAt = movieM.UpdatedAt

	return nil
}

// FindMovieByID retrieves a movie by its unique ID.
func (repo *catalogRepository) FindMovieByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movieM model.MovieModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&movieM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM), nil
}

// FindMoviesByIDs retrieves all movies whose IDs appear in the given set.
func (repo *catalogRepository) FindMoviesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var movieModels []model.MovieModel

	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&movieModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find movies by ids")
	}

	movies := make([]*entity.Movie, 0, len(movieModels))
	for i := range movieModels {
		movies = append(movies, toMovieDomain(&movieModels[i]))
	}

	return movies, nil
}

// ListMovies retrieves all movies in the catalog.
func (repo *catalogRepository) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	var movieModels []model.MovieModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&movieModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(movieModels))
	for i := range movieModels {
		movies = append(movies, toMovieDomain(&movieModels[i]))
	}

	return movies, nil
}

// UpdateMovie updates an existing movie record.
func (repo *catalogRepository) UpdateMovie(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	result := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("id = ?", movieM.ID).
		Updates(map[string]any{
			"title":        movieM.Title,
			"description":  movieM.Description,
			"release_year": movieM.ReleaseYear,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// DeleteMovie removes a movie and its products from the catalog.
func (repo *catalogRepository) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("movie_id = ?", id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete movie products")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MovieModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// CreateProduct persists a new sellable product for a movie.
func (repo *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("movie no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByIDs retrieves all products whose IDs appear in the given set.
func (repo *catalogRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// ListProductsByMovieID retrieves all products attached to a movie.
func (repo *catalogRepository) ListProductsByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by movie")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// UpdateProduct updates an existing product record.
func (repo *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":       productM.Name,
			"buy_price":  productM.BuyPrice,
			"rent_price": productM.RentPrice,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product from the catalog.
func (repo *catalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMovieDomain converts a GORM MovieModel to a domain Movie entity.
func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ReleaseYear: data.ReleaseYear,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMovieDomain converts a domain Movie entity to a GORM MovieModel.
func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	if data == nil {
		return nil
	}

	return &model.MovieModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ReleaseYear: data.ReleaseYear,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		MovieID:   data.MovieID,
		Name:      data.Name,
		BuyPrice:  data.BuyPrice,
		RentPrice: data.RentPrice,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:        data.ID,
		MovieID:   data.MovieID,
		Name:      data.Name,
		BuyPrice:  data.BuyPrice,
		RentPrice: data.RentPrice,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
