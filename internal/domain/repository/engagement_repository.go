// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for engagement persistence.
var (
	// ErrViewNotFound is returned when a product view record is not found.
	ErrViewNotFound = errors.New("product view not found")
	// ErrCartEntryNotFound is returned when a cart entry is not found.
	ErrCartEntryNotFound = errors.New("cart entry not found")
)

// EngagementRepository defines the interface for buyer-listing interaction
// records. Uniqueness per (listing, buyer) is a storage-level constraint;
// the insert operations are idempotent rather than check-then-insert, so
// concurrent buyers cannot race the invariant.
type EngagementRepository interface {
	// InsertViewIfAbsent records a product view unless one already exists
	// for the (listing, buyer) pair. created reports whether a new row was
	// inserted.
	InsertViewIfAbsent(ctx context.Context, view *entity.ProductView) (created bool, err error)

	// FindView retrieves the view record for a (listing, buyer) pair.
	// Returns ErrViewNotFound when the buyer has never viewed the listing.
	FindView(ctx context.Context, listingID, buyerID uuid.UUID) (*entity.ProductView, error)

	// CountViews returns the number of view records for a listing.
	CountViews(ctx context.Context, listingID uuid.UUID) (int64, error)

	// InsertCartEntryIfAbsent adds a listing to the buyer's cart unless it
	// is already there. created reports whether a new row was inserted.
	InsertCartEntryIfAbsent(ctx context.Context, entry *entity.CartEntry) (created bool, err error)

	// DeleteCartEntry removes a listing from the buyer's cart. Removing an
	// absent entry is a no-op.
	DeleteCartEntry(ctx context.Context, listingID, buyerID uuid.UUID) error

	// HasCartEntry reports whether the buyer has the listing in their cart.
	HasCartEntry(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error)

	// FindCartEntriesByBuyer retrieves all cart entries of a buyer, oldest first.
	FindCartEntriesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.CartEntry, error)
}
