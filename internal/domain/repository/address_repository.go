// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrAddressKindConflict is returned when a profile already owns an address of the same kind.
	ErrAddressKindConflict = errors.New("profile already has an address of this kind")
)

// AddressRepository defines the interface for address-related database operations.
// Each profile owns at most one address per kind (billing, shipping).
type AddressRepository interface {
	// CreateAddress persists a new address for a profile.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressByProfileAndKind retrieves the profile's address of the
	// given kind. Returns ErrAddressNotFound when the profile has none.
	FindAddressByProfileAndKind(ctx context.Context, profileID uuid.UUID, kind entity.AddressKind) (*entity.Address, error)

	// UpdateAddress updates an existing address record, including the
	// coordinate pair (set or cleared together).
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
