// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Watchlist is a buyer's set of watched listings. Each buyer owns exactly
// one; membership lives in WatchlistEntry join records. Add is idempotent
// and removing an absent listing is a no-op.
type Watchlist struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the watchlist.
	BuyerID   uuid.UUID // The owning buyer.
	CreatedAt time.Time // Timestamp of when this watchlist was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
