// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductView records that a buyer has viewed a listing at least once.
// At most one record exists per (listing, buyer); repeated views are
// absorbed by the idempotent insert.
type ProductView struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the view record.
	ListingID uuid.UUID // The viewed listing.
	BuyerID   uuid.UUID // The viewing buyer.
	CreatedAt time.Time // Timestamp of the first view.
}

// CartEntry records that a buyer holds a listing in their shopping cart.
// At most one entry exists per (listing, buyer).
type CartEntry struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the cart entry.
	ListingID uuid.UUID // The carted listing.
	BuyerID   uuid.UUID // The buyer who added it.
	CreatedAt time.Time // Timestamp of when the listing was added to the cart.
}

// WatchlistEntry is the join record between a watchlist and a listing.
// At most one entry exists per (watchlist, listing), giving the watchlist
// its set semantics.
type WatchlistEntry struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the entry.
	WatchlistID uuid.UUID // The owning watchlist.
	ListingID   uuid.UUID // The watched listing.
	CreatedAt   time.Time // Timestamp of when the listing was watched.
}
