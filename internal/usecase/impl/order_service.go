package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	clock        service.Clock
	rentalPolicy usecase.RentalPolicy
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Clock        service.Clock
	RentalPolicy usecase.RentalPolicy
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		clock:        params.Clock,
		rentalPolicy: params.RentalPolicy,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder converts the user's cart into an order with one purchase per
// item, then deletes the cart. Runs inside a single transaction so a
// failure anywhere leaves no purchases behind and the cart untouched.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order", slog.Any("user_id", userID))

	var placedOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		catalogRepo := repoFactory.CatalogRepo()
		orderRepo := repoFactory.OrderRepo()
		purchaseRepo := repoFactory.PurchaseRepo()

		// 1. Checkout requires a non-empty cart.
		cart, err := cartRepo.FindCartByOwnerID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrPurchaseOrder.WrapMessage("cannot place an order with an empty cart")
			}

			return errors.Wrap(err, "failed to find user cart")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrPurchaseOrder.WrapMessage("cannot place an order with an empty cart")
		}

		// 2. Snapshot current product prices. There is no price lock-in
		// before this point.
		productIDs := make([]uuid.UUID, 0, len(cart.Items))
		for i := range cart.Items {
			productIDs = append(productIDs, cart.Items[i].ProductID)
		}
		products, err := catalogRepo.FindProductsByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load cart products")
		}
		productByID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}

		now := srv.clock.Now()
		order := &entity.Order{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: now,
		}

		purchases := make([]entity.Purchase, 0, len(cart.Items))
		for i := range cart.Items {
			item := cart.Items[i]

			product, ok := productByID[item.ProductID]
			if !ok {
				return domainerrors.ErrPurchaseOrder.WrapMessage("cart references a product that no longer exists")
			}

			price := product.PriceFor(item.Kind)

			purchase := entity.Purchase{
				ID:          uuid.New(),
				OrderID:     order.ID,
				UserID:      userID,
				ProductID:   product.ID,
				MovieID:     product.MovieID,
				Kind:        item.Kind,
				Price:       price,
				PurchasedAt: now,
			}
			if item.Kind == entity.PurchaseKindRent {
				duration := srv.rentalPolicy.Duration
				purchase.RentDuration = &duration
			}

			purchases = append(purchases, purchase)
			order.Total += price
		}
		order.Purchases = purchases

		// 3. Persist the order, then each purchase record.
		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(domainerrors.ErrPurchaseOrder, "failed to create order: "+err.Error())
		}
		for i := range order.Purchases {
			if err := purchaseRepo.CreatePurchase(ctx, &order.Purchases[i]); err != nil {
				return errors.Wrap(domainerrors.ErrPurchaseOrder, "failed to create purchase: "+err.Error())
			}
		}

		// 4. Consuming the cart is part of the same transaction, so the
		// cart can never end up half cleared.
		if err := cartRepo.DeleteCart(ctx, cart.ID); err != nil {
			return errors.Wrap(domainerrors.ErrPurchaseOrder, "failed to clear cart: "+err.Error())
		}
		placedOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to place order")
	}
	srv.log(ctx).Info("Order placed", slog.Any("order_id", placedOrder.ID), slog.Int64("total", placedOrder.Total))

	return placedOrder, nil
}

// GetOrder retrieves one order and verifies ownership.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		if found.UserID != userID {
			// Hide other users' orders entirely.
			return domainerrors.ErrNotFound.WrapMessage("order not found")
		}
		order = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get order", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListOrders retrieves the user's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindOrdersByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
