package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// The (seller, name) pair carries the uniqueness invariant; Version backs
// optimistic concurrency on status writes.
type ListingModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SellerID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_listings_on_seller_name"`
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_listings_on_seller_name"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description  string          `gorm:"type:text;not null"`
	Condition    string          `gorm:"type:varchar(20);not null"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	Category     string          `gorm:"type:varchar(50);not null;index"`
	Postage      string          `gorm:"type:varchar(30);not null"`
	Manufacturer string          `gorm:"type:varchar(255)"`
	Publisher    string          `gorm:"type:varchar(255)"`
	Author       string          `gorm:"type:varchar(255)"`
	Illustrator  string          `gorm:"type:varchar(255)"`
	ISBN10       string          `gorm:"type:varchar(10);column:isbn_10"`
	ISBN13       string          `gorm:"type:varchar(13);column:isbn_13"`
	PublishDate  *time.Time
	Dimensions   string           `gorm:"type:varchar(100)"`
	Weight       *decimal.Decimal `gorm:"type:numeric(10,3)"`
	Keywords     string           `gorm:"type:varchar(255)"`
	Version      int64            `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
