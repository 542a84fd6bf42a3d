package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchlistUsecase defines the interface for watchlist use cases. Each buyer
// owns one watchlist, created lazily on first use; membership is a set.
type WatchlistUsecase interface {
	// AddToWatchlist puts the listing on the buyer's watchlist. Adding
	// twice keeps one entry.
	AddToWatchlist(ctx context.Context, buyerID, listingID uuid.UUID) error

	// RemoveFromWatchlist takes the listing off the buyer's watchlist.
	// Removing an absent listing is a no-op.
	RemoveFromWatchlist(ctx context.Context, buyerID, listingID uuid.UUID) error

	// IsWatched reports whether the buyer watches the listing.
	IsWatched(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error)

	// GetWatchedListings retrieves the listings on the buyer's watchlist,
	// oldest first.
	GetWatchedListings(ctx context.Context, buyerID uuid.UUID) ([]*entity.Listing, error)
}
