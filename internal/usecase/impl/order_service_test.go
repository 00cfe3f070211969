package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	mockRepo "marquee/internal/mocks/repository"
	mockSvc "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	clock     *mockSvc.MockClock
}

const testRentalWindow = 48 * time.Hour

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clock := mockSvc.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		Clock:        clock,
		RentalPolicy: usecase.RentalPolicy{Duration: testRentalWindow},
		Logger:       logger,
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		clock:     clock,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	cartID := uuid.New()

	movieID := uuid.New()
	boughtProduct := &entity.Product{ID: uuid.New(), MovieID: movieID, BuyPrice: 1999, RentPrice: 499}
	rentedProduct := &entity.Product{ID: uuid.New(), MovieID: uuid.New(), BuyPrice: 2999, RentPrice: 599}

	cart := &entity.Cart{
		ID:      cartID,
		OwnerID: &userID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: boughtProduct.ID, Kind: entity.PurchaseKindBuy, Selected: true},
			{ID: uuid.New(), CartID: cartID, ProductID: rentedProduct.ID, Kind: entity.PurchaseKindRent, Selected: true},
		},
	}

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(cart, nil)

			mockCatalogRepo.EXPECT().
				FindProductsByIDs(ctx, []uuid.UUID{boughtProduct.ID, rentedProduct.ID}).
				Return([]*entity.Product{boughtProduct, rentedProduct}, nil)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)

			mockPurchaseRepo.EXPECT().
				CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)

			// The cart is consumed in the same transaction.
			mockCartRepo.EXPECT().
				DeleteCart(ctx, cartID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, int64(1999+599), order.Total)
	require.Len(t, order.Purchases, 2)

	bought := order.Purchases[0]
	assert.Equal(t, entity.PurchaseKindBuy, bought.Kind)
	assert.Equal(t, int64(1999), bought.Price)
	assert.Equal(t, movieID, bought.MovieID)
	assert.Nil(t, bought.RentDuration)
	assert.Equal(t, now, bought.PurchasedAt)

	rented := order.Purchases[1]
	assert.Equal(t, entity.PurchaseKindRent, rented.Kind)
	assert.Equal(t, int64(599), rented.Price)
	require.NotNil(t, rented.RentDuration)
	assert.Equal(t, testRentalWindow, *rented.RentDuration)
}

func TestOrderService_PlaceOrder_NoCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(nil, repository.ErrCartNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPurchaseOrder.WrapMessage("cannot place an order with an empty cart"))

	order, err := fx.service.PlaceOrder(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseOrder))
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), OwnerID: &userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(cart, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPurchaseOrder.WrapMessage("cannot place an order with an empty cart"))

	order, err := fx.service.PlaceOrder(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseOrder))
}

func TestOrderService_PlaceOrder_VanishedProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	cartID := uuid.New()
	goneProductID := uuid.New()

	cart := &entity.Cart{
		ID:      cartID,
		OwnerID: &userID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: goneProductID, Kind: entity.PurchaseKindBuy, Selected: true},
		},
	}

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockCartRepo.EXPECT().
				FindCartByOwnerID(ctx, userID).
				Return(cart, nil)

			// The product was deleted between carting and checkout.
			mockCatalogRepo.EXPECT().
				FindProductsByIDs(ctx, []uuid.UUID{goneProductID}).
				Return([]*entity.Product{}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPurchaseOrder.WrapMessage("cart references a product that no longer exists"))

	order, err := fx.service.PlaceOrder(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseOrder))
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Total: 1999}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindOrderByID(ctx, order.ID).
				Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	found, err := fx.service.GetOrder(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetOrder_ForeignOrderHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Total: 1999}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindOrderByID(ctx, order.ID).
				Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("order not found"))

	// Another user's order reads as not found, never as forbidden.
	found, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.Order{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindOrdersByUserID(ctx, userID).
				Return(history, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	found, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}
