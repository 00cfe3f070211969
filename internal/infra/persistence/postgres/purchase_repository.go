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

// purchaseRepository implements the domain.PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// CreatePurchase persists a new purchase record.
func (repo *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("order or product no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID

	return nil
}

// FindPurchasesByUserID retrieves all purchases ever made by a user.
func (repo *purchaseRepository) FindPurchasesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchaseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(&purchaseModels[i]))
	}

	return purchases, nil
}

// FindPurchasesByUserAndMovie retrieves all purchases a user made for a specific movie.
func (repo *purchaseRepository) FindPurchasesByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Order("purchased_at DESC").
		Find(&purchaseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by user and movie")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(&purchaseModels[i]))
	}

	return purchases, nil
}
