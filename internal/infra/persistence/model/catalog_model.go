package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieModel mirrors the 'movies' table.
type MovieModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ReleaseYear int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}

// ProductModel mirrors the 'products' table. Prices are stored in minor
// currency units.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MovieID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	BuyPrice  int64     `gorm:"not null"`
	RentPrice int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
