// Package usecase defines the application-specific business rules interfaces.
package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateListingInput represents the input for creating a new listing
type CreateListingInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Condition   string          `json:"condition" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Postage     string          `json:"postage" validate:"required"`

	Manufacturer string           `json:"manufacturer,omitempty"`
	Publisher    string           `json:"publisher,omitempty"`
	Author       string           `json:"author,omitempty"`
	Illustrator  string           `json:"illustrator,omitempty"`
	ISBN10       string           `json:"isbn_10,omitempty"`
	ISBN13       string           `json:"isbn_13,omitempty"`
	PublishDate  *time.Time       `json:"publish_date,omitempty"`
	Dimensions   string           `json:"dimensions,omitempty"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	Keywords     string           `json:"keywords,omitempty"`
}

// UpdateListingInput represents the input for updating an existing listing
type UpdateListingInput struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Postage     *string          `json:"postage,omitempty"`

	Manufacturer *string          `json:"manufacturer,omitempty"`
	Publisher    *string          `json:"publisher,omitempty"`
	Author       *string          `json:"author,omitempty"`
	Illustrator  *string          `json:"illustrator,omitempty"`
	ISBN10       *string          `json:"isbn_10,omitempty"`
	ISBN13       *string          `json:"isbn_13,omitempty"`
	PublishDate  *time.Time       `json:"publish_date,omitempty"`
	Dimensions   *string          `json:"dimensions,omitempty"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	Keywords     *string          `json:"keywords,omitempty"`
}

// ListingDetail is the read model for a listing page. Seller fields come
// from the seller's profile: the location string and latitude from the
// billing address, the longitude from the shipping address, kept that way
// for map-pin compatibility with existing clients.
type ListingDetail struct {
	Listing          *entity.Listing `json:"listing"`
	SellerName       string          `json:"seller_name"`
	SellerLocation   string          `json:"seller_location,omitempty"`
	SellerLatitude   *float64        `json:"seller_latitude,omitempty"`
	SellerLongitude  *float64        `json:"seller_longitude,omitempty"`
	ViewCount        int64           `json:"view_count"`
	AddedToCart      bool            `json:"added_to_cart"`
	AddedToWatchlist bool            `json:"added_to_watchlist"`
	ShareURL         string          `json:"share_url"`
}

// CatalogUsecase defines the interface for listing catalog management use cases
type CatalogUsecase interface {
	// CreateListing validates and persists a new listing for a seller.
	// The listing name must be unique among that seller's listings.
	CreateListing(ctx context.Context, sellerID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)

	// UpdateListing applies partial updates to a listing owned by the seller.
	UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *UpdateListingInput) (*entity.Listing, error)

	// GetListingDetail assembles the listing read model. viewerID, when
	// present, fills the viewer-specific cart and watchlist flags.
	GetListingDetail(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*ListingDetail, error)

	// GetSellerListings retrieves all listings of a seller.
	GetSellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error)

	// SetListingStatus moves a listing through its sale lifecycle. Setting
	// the current status again is a no-op.
	SetListingStatus(ctx context.Context, listingID uuid.UUID, status string) (*entity.Listing, error)

	// DeleteListing removes a listing owned by the seller.
	DeleteListing(ctx context.Context, sellerID, listingID uuid.UUID) error

	// DistanceFromSeller computes the kilometer distance between the
	// buyer's and the seller's billing addresses. known is false when
	// either side has no resolved coordinate.
	DistanceFromSeller(ctx context.Context, listingID, buyerID uuid.UUID) (distanceKm float64, known bool, err error)

	// SearchListings queries the listing index.
	SearchListings(ctx context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error)

	// GenerateShareQRCode renders the PNG QR code for a listing's share URL.
	GenerateShareQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}
