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

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// CreateCart persists a new cart, anonymous or user-owned.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("user already has a cart")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindCartByID retrieves a cart with its items by the cart's unique ID.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByOwnerID retrieves the cart owned by a specific user.
func (repo *cartRepository) FindCartByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ?", ownerID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// ClaimCart assigns ownership of an anonymous cart to a user.
func (repo *cartRepository) ClaimCart(ctx context.Context, cartID, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND owner_id IS NULL", cartID).
		Update("owner_id", ownerID)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAlreadyExists.WrapMessage("user already has a cart")
		}

		return errors.Wrap(result.Error, "failed to claim cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// DeleteCart removes a cart and all of its items.
func (repo *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	// Items go first so the delete works without relying on ON DELETE CASCADE.
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", id).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// CreateCartItem adds an item to a cart.
func (repo *cartRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("product already in cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("cart or product no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateCartItem updates an existing cart item record.
func (repo *cartRepository) UpdateCartItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemM.ID).
		Updates(map[string]any{
			"kind":     itemM.Kind,
			"selected": itemM.Selected,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteCartItem removes a single item from a cart.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, cartID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, *toCartItemDomain(&data.Items[i]))
	}

	return &entity.Cart{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Kind:      entity.PurchaseKind(data.Kind),
		Selected:  data.Selected,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Kind:      string(data.Kind),
		Selected:  data.Selected,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
