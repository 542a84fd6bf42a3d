package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductViewModel is the GORM-specific struct for the 'product_views' table.
// The composite unique index makes repeated views of a listing by the same
// buyer collapse into one row at the storage level.
type ProductViewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_views_on_listing_buyer"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_views_on_listing_buyer"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductViewModel) TableName() string {
	return "product_views"
}

// CartEntryModel is the GORM-specific struct for the 'cart_entries' table.
type CartEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_entries_on_listing_buyer"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_entries_on_listing_buyer"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartEntryModel) TableName() string {
	return "cart_entries"
}
