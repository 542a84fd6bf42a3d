// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrWatchlistNotFound is returned when a watchlist is not found.
var ErrWatchlistNotFound = errors.New("watchlist not found")

// WatchlistRepository defines the interface for watchlist persistence.
// Membership has set semantics: entries are unique per (watchlist, listing),
// duplicate adds are absorbed and removing an absent listing is a no-op.
type WatchlistRepository interface {
	// FindOrCreateWatchlistByBuyer retrieves the buyer's watchlist,
	// creating it on first use. Each buyer owns exactly one.
	FindOrCreateWatchlistByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Watchlist, error)

	// InsertEntryIfAbsent adds a listing to the watchlist unless it is
	// already present. created reports whether a new row was inserted.
	InsertEntryIfAbsent(ctx context.Context, entry *entity.WatchlistEntry) (created bool, err error)

	// DeleteEntry removes a listing from the watchlist. Removing an absent
	// listing is a no-op.
	DeleteEntry(ctx context.Context, watchlistID, listingID uuid.UUID) error

	// HasEntry reports whether the watchlist contains the listing.
	HasEntry(ctx context.Context, watchlistID, listingID uuid.UUID) (bool, error)

	// HasEntryForBuyer reports whether the buyer watches the listing,
	// without requiring the watchlist to exist yet.
	HasEntryForBuyer(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error)

	// FindEntries retrieves all entries of a watchlist, oldest first.
	FindEntries(ctx context.Context, watchlistID uuid.UUID) ([]*entity.WatchlistEntry, error)
}
