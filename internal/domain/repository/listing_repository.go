// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrDuplicateListingName is returned when a seller already has a listing with the same name.
	ErrDuplicateListingName = errors.New("seller already has a listing with this name")
	// ErrVersionConflict is returned when an optimistic status write loses to a concurrent update.
	ErrVersionConflict = errors.New("listing was modified concurrently")
)

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// CreateListing persists a new listing. Returns ErrDuplicateListingName
	// when the (seller, name) unique constraint is violated.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindListingBySellerAndName retrieves a listing by the (seller, name) pair.
	// Returns ErrListingNotFound when no such listing exists.
	FindListingBySellerAndName(ctx context.Context, sellerID uuid.UUID, name string) (*entity.Listing, error)

	// FindListingsBySeller retrieves all listings of a seller.
	FindListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error)

	// UpdateListing updates an existing listing record.
	UpdateListing(ctx context.Context, listing *entity.Listing) error

	// UpdateListingStatus sets the status with a compare-and-swap on the
	// version column. Returns ErrVersionConflict when expectedVersion no
	// longer matches the stored row.
	UpdateListingStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus, expectedVersion int64) error

	// DeleteListing removes a listing by its ID.
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
