package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem pairs a cart entry with its listing.
type CartItem struct {
	Listing *entity.Listing `json:"listing"`
	AddedAt time.Time       `json:"added_at"`
}

// CartSummary is the read model for a buyer's shopping cart.
type CartSummary struct {
	Items      []*CartItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
	TotalCents int64           `json:"total_cents"`
}

// EngagementUsecase defines the interface for buyer-listing interaction use
// cases. Every recording operation is idempotent: repeating it leaves
// exactly one record behind.
type EngagementUsecase interface {
	// RecordView records that the buyer viewed the listing. created reports
	// whether this was the first view; repeats change nothing.
	RecordView(ctx context.Context, listingID, buyerID uuid.UUID) (created bool, err error)

	// GetViewCount returns the number of distinct buyers who viewed the listing.
	GetViewCount(ctx context.Context, listingID uuid.UUID) (int64, error)

	// AddToCart puts the listing in the buyer's cart. Adding twice keeps one entry.
	AddToCart(ctx context.Context, listingID, buyerID uuid.UUID) error

	// RemoveFromCart takes the listing out of the buyer's cart. Removing an
	// absent listing is a no-op.
	RemoveFromCart(ctx context.Context, listingID, buyerID uuid.UUID) error

	// AddedToCart reports whether the buyer has the listing in their cart.
	AddedToCart(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error)

	// GetCart assembles the buyer's cart with its listing details and total.
	GetCart(ctx context.Context, buyerID uuid.UUID) (*CartSummary, error)
}
