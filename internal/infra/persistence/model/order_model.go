package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Orders are immutable after
// creation.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Total     int64     `gorm:"not null"`
	CreatedAt time.Time

	Purchases []PurchaseModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PurchaseModel mirrors the 'purchases' table. RentDuration holds the
// rental window in nanoseconds and is null for permanent purchases.
type PurchaseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_purchases_user_movie"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	MovieID      uuid.UUID `gorm:"type:uuid;not null;index:idx_purchases_user_movie"`
	Kind         string    `gorm:"type:varchar(10);not null"`
	Price        int64     `gorm:"not null"`
	RentDuration *int64    `gorm:"type:bigint"`
	PurchasedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
