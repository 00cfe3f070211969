package postgres

import (
	"context"
	"time"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order row. Purchases are persisted
// separately through the purchase repository inside the same transaction.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Purchases").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("user no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindOrderByID retrieves an order with its purchases by the order's unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Purchases").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUserID retrieves all orders placed by a user, newest first.
func (repo *orderRepository) FindOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Purchases").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	purchases := make([]entity.Purchase, 0, len(data.Purchases))
	for i := range data.Purchases {
		purchases = append(purchases, *toPurchaseDomain(&data.Purchases[i]))
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		Purchases: purchases,
		CreatedAt: data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
	}
}

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	var rentDuration *time.Duration
	if data.RentDuration != nil {
		d := time.Duration(*data.RentDuration)
		rentDuration = &d
	}

	return &entity.Purchase{
		ID:           data.ID,
		OrderID:      data.OrderID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		MovieID:      data.MovieID,
		Kind:         entity.PurchaseKind(data.Kind),
		Price:        data.Price,
		RentDuration: rentDuration,
		PurchasedAt:  data.PurchasedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	var rentDuration *int64
	if data.RentDuration != nil {
		ns := int64(*data.RentDuration)
		rentDuration = &ns
	}

	return &model.PurchaseModel{
		ID:           data.ID,
		OrderID:      data.OrderID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		MovieID:      data.MovieID,
		Kind:         string(data.Kind),
		Price:        data.Price,
		RentDuration: rentDuration,
		PurchasedAt:  data.PurchasedAt,
	}
}
