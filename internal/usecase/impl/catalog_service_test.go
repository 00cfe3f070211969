package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	mockRepo "marquee/internal/mocks/repository"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return catalogServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func adminPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func TestCatalogService_ListMovies(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Movie{
		{ID: uuid.New(), Title: "Movie A"},
		{ID: uuid.New(), Title: "Movie B"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				ListMovies(ctx).
				Return(catalog, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	movies, err := fx.service.ListMovies(ctx)

	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestCatalogService_GetMovie_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	movie := &entity.Movie{ID: uuid.New(), Title: "Movie A"}
	offers := []*entity.Product{
		{ID: uuid.New(), MovieID: movie.ID, Name: "HD", BuyPrice: 1999, RentPrice: 499},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, movie.ID).
				Return(movie, nil)

			mockCatalogRepo.EXPECT().
				ListProductsByMovieID(ctx, movie.ID).
				Return(offers, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	found, products, err := fx.service.GetMovie(ctx, movie.ID)

	require.NoError(t, err)
	assert.Equal(t, movie.ID, found.ID)
	assert.Len(t, products, 1)
}

func TestCatalogService_GetMovie_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	movieID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, movieID).
				Return(nil, repository.ErrMovieNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("movie not found"))

	found, products, err := fx.service.GetMovie(ctx, movieID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), MovieID: uuid.New(), Name: "HD", BuyPrice: 1999, RentPrice: 499}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindProductByID(ctx, product.ID).
				Return(product, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	found, err := fx.service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
}

func TestCatalogService_CreateMovie_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := usecase.CreateMovieInput{
		Title:       "New Movie",
		Description: "A description",
		ReleaseYear: 2024,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				CreateMovie(ctx, mock.AnythingOfType("*entity.Movie")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	movie, err := fx.service.CreateMovie(ctx, adminPrincipal(), input)

	require.NoError(t, err)
	assert.Equal(t, input.Title, movie.Title)
	assert.Equal(t, input.ReleaseYear, movie.ReleaseYear)
}

func TestCatalogService_CreateMovie_NonAdminForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	// The guard fires before any transaction starts.
	movie, err := fx.service.CreateMovie(ctx, principal, usecase.CreateMovieInput{Title: "Nope"})

	assert.Error(t, err)
	assert.Nil(t, movie)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_UpdateMovie_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	movie := &entity.Movie{ID: uuid.New(), Title: "Old Title", ReleaseYear: 1999}
	input := usecase.UpdateMovieInput{
		MovieID:     movie.ID,
		Title:       "New Title",
		Description: "Updated",
		ReleaseYear: 2001,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, movie.ID).
				Return(movie, nil)

			mockCatalogRepo.EXPECT().
				UpdateMovie(ctx, mock.AnythingOfType("*entity.Movie")).
				Run(func(ctx context.Context, updated *entity.Movie) {
					assert.Equal(t, "New Title", updated.Title)
					assert.Equal(t, 2001, updated.ReleaseYear)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateMovie(ctx, adminPrincipal(), input)

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
}

func TestCatalogService_DeleteMovie_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	movieID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, movieID).
				Return(nil, repository.ErrMovieNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("movie not found"))

	err := fx.service.DeleteMovie(ctx, adminPrincipal(), movieID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	movie := &entity.Movie{ID: uuid.New(), Title: "Movie A"}
	input := usecase.CreateProductInput{
		MovieID:   movie.ID,
		Name:      "4K",
		BuyPrice:  2999,
		RentPrice: 599,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, movie.ID).
				Return(movie, nil)

			mockCatalogRepo.EXPECT().
				CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, adminPrincipal(), input)

	require.NoError(t, err)
	assert.Equal(t, movie.ID, product.MovieID)
	assert.Equal(t, int64(2999), product.BuyPrice)
	assert.Equal(t, int64(599), product.RentPrice)
}

func TestCatalogService_CreateProduct_OrphanRejected(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := usecase.CreateProductInput{MovieID: uuid.New(), Name: "HD", BuyPrice: 1999, RentPrice: 499}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCatalogRepo.EXPECT().
				FindMovieByID(ctx, input.MovieID).
				Return(nil, repository.ErrMovieNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("movie not found"))

	product, err := fx.service.CreateProduct(ctx, adminPrincipal(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_DeleteProduct_NonAdminForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	err := fx.service.DeleteProduct(ctx, principal, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
