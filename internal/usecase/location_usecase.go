package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertAddressInput represents the structured address fields supplied by the user
type UpsertAddressInput struct {
	HouseNumber string `json:"house_number"`
	StreetName  string `json:"street_name"`
	TownSuburb  string `json:"town_suburb"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

// LocationUsecase defines the interface for profile address management.
// Saving an address re-geocodes it only when the canonical display form
// changed; a failed lookup degrades to an unresolved address, never an error.
type LocationUsecase interface {
	// UpsertAddress creates or replaces the user's address of the given kind.
	UpsertAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, input *UpsertAddressInput) (*entity.Address, error)

	// GetAddresses retrieves the user's billing and shipping addresses.
	// Either may be nil when not yet provided.
	GetAddresses(ctx context.Context, userID uuid.UUID) (billing, shipping *entity.Address, err error)

	// DeleteAddress removes the user's address of the given kind.
	DeleteAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) error

	// DistanceBetweenUsers computes the kilometer distance between two
	// users' billing addresses. known is false when either side has no
	// resolved coordinate.
	DistanceBetweenUsers(ctx context.Context, userID, otherUserID uuid.UUID) (distanceKm float64, known bool, err error)
}
