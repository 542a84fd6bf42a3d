package model

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistModel is the GORM-specific struct for the 'watchlists' table.
// One watchlist per buyer.
type WatchlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistModel) TableName() string {
	return "watchlists"
}

// WatchlistEntryModel is the GORM-specific struct for the 'watchlist_entries' table.
// The composite unique index gives the watchlist its set semantics.
type WatchlistEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	WatchlistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_entries_on_watchlist_listing"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_entries_on_watchlist_listing"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistEntryModel) TableName() string {
	return "watchlist_entries"
}
