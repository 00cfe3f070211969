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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCartService(CartServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return cartServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func TestCartService_ResolveEffectiveCart_AnonymousFirstVisit(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	ref := usecase.CartRef{}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockCartRepo.EXPECT().
				CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	cart, err := fx.service.ResolveEffectiveCart(ctx, ref)

	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Nil(t, cart.OwnerID)
}

func TestCartService_ResolveEffectiveCart_AnonymousWithForeignCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sessionCartID := uuid.New()
	foreignCart := &entity.Cart{ID: sessionCartID, OwnerID: &ownerID}
	ref := usecase.CartRef{SessionCartID: &sessionCartID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, sessionCartID).
				Return(foreignCart, nil)

			// The owned cart must not leak into an anonymous session.
			mockCartRepo.EXPECT().
				CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	cart, err := fx.service.ResolveEffectiveCart(ctx, ref)

	require.NoError(t, err)
	assert.NotEqual(t, sessionCartID, cart.ID)
	assert.Nil(t, cart.OwnerID)
}

func TestCartService_ResolveEffectiveCart_StaleSessionCartID(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	staleCartID := uuid.New()
	userCart := &entity.Cart{ID: uuid.New(), OwnerID: &userID}
	ref := usecase.CartRef{
		Principal:     &entity.Principal{UserID: userID, Role: entity.RoleUser},
		SessionCartID: &staleCartID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			// A deleted or bogus cookie behaves like no cookie at all.
			mockCartRepo.EXPECT().
				FindCartByID(ctx, staleCartID).
				Return(nil, repository.ErrCartNotFound)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(userCart, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	cart, err := fx.service.ResolveEffectiveCart(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, userCart.ID, cart.ID)
}

func TestCartService_ResolveEffectiveCart_AdoptsSessionCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionCartID := uuid.New()
	sessionCart := &entity.Cart{
		ID: sessionCartID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: sessionCartID, ProductID: uuid.New(), Kind: entity.PurchaseKindBuy, Selected: true},
		},
	}
	ref := usecase.CartRef{
		Principal:     &entity.Principal{UserID: userID, Role: entity.RoleUser},
		SessionCartID: &sessionCartID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, sessionCartID).
				Return(sessionCart, nil)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(nil, repository.ErrCartNotFound)

			mockCartRepo.EXPECT().
				ClaimCart(ctx, sessionCartID, userID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	cart, err := fx.service.ResolveEffectiveCart(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, sessionCartID, cart.ID)
	require.NotNil(t, cart.OwnerID)
	assert.Equal(t, userID, *cart.OwnerID)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ResolveEffectiveCart_MergePrefersUserCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionCartID := uuid.New()
	userCartID := uuid.New()

	sharedProductID := uuid.New()
	sessionOnlyProductID := uuid.New()
	userOnlyProductID := uuid.New()

	sessionCart := &entity.Cart{
		ID: sessionCartID,
		Items: []entity.CartItem{
			// Conflicts with the user cart on kind. The user's choice wins.
			{ID: uuid.New(), CartID: sessionCartID, ProductID: sharedProductID, Kind: entity.PurchaseKindRent, Selected: true},
			{ID: uuid.New(), CartID: sessionCartID, ProductID: sessionOnlyProductID, Kind: entity.PurchaseKindBuy, Selected: false},
		},
	}
	userCart := &entity.Cart{
		ID:      userCartID,
		OwnerID: &userID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: userCartID, ProductID: sharedProductID, Kind: entity.PurchaseKindBuy, Selected: true},
			{ID: uuid.New(), CartID: userCartID, ProductID: userOnlyProductID, Kind: entity.PurchaseKindRent, Selected: true},
		},
	}
	ref := usecase.CartRef{
		Principal:     &entity.Principal{UserID: userID, Role: entity.RoleUser},
		SessionCartID: &sessionCartID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, sessionCartID).
				Return(sessionCart, nil)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(userCart, nil)

			// Only the session-exclusive item moves over. Selection and
			// kind travel with it.
			mockCartRepo.EXPECT().
				CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).
				Run(func(ctx context.Context, item *entity.CartItem) {
					assert.Equal(t, userCartID, item.CartID)
					assert.Equal(t, sessionOnlyProductID, item.ProductID)
					assert.Equal(t, entity.PurchaseKindBuy, item.Kind)
					assert.False(t, item.Selected)
				}).
				Return(nil)

			mockCartRepo.EXPECT().
				DeleteCart(ctx, sessionCartID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	cart, err := fx.service.ResolveEffectiveCart(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, userCartID, cart.ID)
	assert.Len(t, cart.Items, 3)

	shared := cart.FindItem(sharedProductID)
	require.NotNil(t, shared)
	assert.Equal(t, entity.PurchaseKindBuy, shared.Kind)
}

func TestCartService_GetCart_ComputesTotals(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	movie := &entity.Movie{ID: uuid.New(), Title: "Some Movie"}
	product1 := &entity.Product{ID: uuid.New(), MovieID: movie.ID, BuyPrice: 1999, RentPrice: 499}
	product2 := &entity.Product{ID: uuid.New(), MovieID: movie.ID, BuyPrice: 2999, RentPrice: 599}
	cart := &entity.Cart{
		ID: cartID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: product1.ID, Kind: entity.PurchaseKindBuy, Selected: true},
			{ID: uuid.New(), CartID: cartID, ProductID: product2.ID, Kind: entity.PurchaseKindRent, Selected: false},
		},
	}
	ref := usecase.CartRef{SessionCartID: &cartID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			mockCatalogRepo.EXPECT().
				FindProductsByIDs(ctx, []uuid.UUID{product1.ID, product2.ID}).
				Return([]*entity.Product{product1, product2}, nil)

			mockCatalogRepo.EXPECT().
				FindMoviesByIDs(ctx, []uuid.UUID{movie.ID, movie.ID}).
				Return([]*entity.Movie{movie}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	summary, err := fx.service.GetCart(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, cartID, summary.CartID)
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, int64(1999), summary.Lines[0].Price)
	assert.Equal(t, int64(599), summary.Lines[1].Price)
	assert.Equal(t, int64(1999+599), summary.Total)
	assert.Equal(t, int64(1999), summary.SelectedTotal)
}

func TestCartService_AddItem_DuplicateSameKind(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	product := &entity.Product{ID: uuid.New(), MovieID: uuid.New(), BuyPrice: 1999, RentPrice: 499}
	cart := &entity.Cart{
		ID: cartID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: product.ID, Kind: entity.PurchaseKindBuy, Selected: true},
		},
	}
	ref := usecase.CartRef{SessionCartID: &cartID}
	input := usecase.AddItemInput{ProductID: product.ID, Kind: entity.PurchaseKindBuy}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			mockCatalogRepo.EXPECT().
				FindProductByID(ctx, product.ID).
				Return(product, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAlreadyExists.WrapMessage("product already in cart with the same kind"))

	summary, err := fx.service.AddItem(ctx, ref, input)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyExists))
}

func TestCartService_AddItem_DifferentKindReplaces(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	movie := &entity.Movie{ID: uuid.New(), Title: "Some Movie"}
	product := &entity.Product{ID: uuid.New(), MovieID: movie.ID, BuyPrice: 1999, RentPrice: 499}
	cart := &entity.Cart{
		ID: cartID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: product.ID, Kind: entity.PurchaseKindBuy, Selected: true},
		},
	}
	ref := usecase.CartRef{SessionCartID: &cartID}
	input := usecase.AddItemInput{ProductID: product.ID, Kind: entity.PurchaseKindRent}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			mockCatalogRepo.EXPECT().
				FindProductByID(ctx, product.ID).
				Return(product, nil)

			// Same product, different kind: the old line goes first.
			mockCartRepo.EXPECT().
				DeleteCartItem(ctx, cartID, product.ID).
				Return(nil)

			mockCartRepo.EXPECT().
				CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).
				Run(func(ctx context.Context, item *entity.CartItem) {
					assert.Equal(t, entity.PurchaseKindRent, item.Kind)
					assert.True(t, item.Selected)
				}).
				Return(nil)

			mockCatalogRepo.EXPECT().
				FindProductsByIDs(ctx, []uuid.UUID{product.ID}).
				Return([]*entity.Product{product}, nil)

			mockCatalogRepo.EXPECT().
				FindMoviesByIDs(ctx, []uuid.UUID{movie.ID}).
				Return([]*entity.Movie{movie}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	summary, err := fx.service.AddItem(ctx, ref, input)

	require.NoError(t, err)
	assert.NotNil(t, summary)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	productID := uuid.New()
	cart := &entity.Cart{ID: cartID}
	ref := usecase.CartRef{SessionCartID: &cartID}
	input := usecase.AddItemInput{ProductID: productID, Kind: entity.PurchaseKindBuy}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			mockCatalogRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("product not found"))

	summary, err := fx.service.AddItem(ctx, ref, input)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_UpdateItem_MissingItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	cart := &entity.Cart{ID: cartID}
	ref := usecase.CartRef{SessionCartID: &cartID}
	selected := false
	input := usecase.UpdateItemInput{ProductID: uuid.New(), Selected: &selected}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("cart item not found"))

	summary, err := fx.service.UpdateItem(ctx, ref, input)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cartID := uuid.New()
	movie := &entity.Movie{ID: uuid.New(), Title: "Some Movie"}
	product := &entity.Product{ID: uuid.New(), MovieID: movie.ID, BuyPrice: 1999, RentPrice: 499}
	cart := &entity.Cart{
		ID: cartID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: product.ID, Kind: entity.PurchaseKindBuy, Selected: true},
		},
	}
	ref := usecase.CartRef{SessionCartID: &cartID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockCartRepo.EXPECT().
				FindCartByID(ctx, cartID).
				Return(cart, nil)

			mockCartRepo.EXPECT().
				DeleteCartItem(ctx, cartID, product.ID).
				Return(nil)

			mockCatalogRepo.EXPECT().
				FindProductsByIDs(ctx, []uuid.UUID{product.ID}).
				Return([]*entity.Product{product}, nil)

			mockCatalogRepo.EXPECT().
				FindMoviesByIDs(ctx, []uuid.UUID{movie.ID}).
				Return([]*entity.Movie{movie}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	summary, err := fx.service.RemoveItem(ctx, ref, product.ID)

	require.NoError(t, err)
	assert.NotNil(t, summary)
}
