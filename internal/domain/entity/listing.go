// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing is an item offered for sale by a seller. The (seller, name) pair is
// unique: a seller cannot list two items under the same name. Status moves
// through the cart/checkout lifecycle (see ListingStatus); Version backs the
// optimistic concurrency check on status writes.
type Listing struct {
	ID          uuid.UUID        // The Global Unique Identifier (GUID) for the listing.
	SellerID    uuid.UUID        // The ID of the user selling this item.
	Name        string           // The listing title, unique per seller.
	Price       decimal.Decimal  // Non-negative asking price.
	Description string           // Free-text description.
	Condition   ListingCondition // Physical condition of the item.
	Status      ListingStatus    // Cart/checkout lifecycle state.
	Category    ListingCategory  // Marketplace category.
	Postage     PostageType      // Shipping arrangement.

	// Optional, domain-specific detail fields.
	Manufacturer string
	Publisher    string
	Author       string
	Illustrator  string
	ISBN10       string
	ISBN13       string
	PublishDate  *time.Time
	Dimensions   string
	Weight       *decimal.Decimal

	Keywords  string    // Space-separated search keywords.
	Version   int64     // Optimistic lock version for status writes.
	CreatedAt time.Time // Timestamp of when this listing was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Validate checks the listing invariants and returns a ValidationError naming
// the first offending field. Uniqueness of (seller, name) is enforced at the
// persistence layer, not here.
func (l *Listing) Validate() error {
	if l.Name == "" {
		return domainerrors.NewValidationError("name", "must be present")
	}
	if l.Price.IsNegative() {
		return domainerrors.NewValidationError("price", "must be greater than or equal to 0")
	}
	if l.Description == "" {
		return domainerrors.NewValidationError("description", "must be present")
	}
	if !l.Condition.IsValid() {
		return domainerrors.NewValidationError("condition", "must be a valid condition")
	}
	if !l.Status.IsValid() {
		return domainerrors.NewValidationError("status", "must be a valid status")
	}
	if !l.Category.IsValid() {
		return domainerrors.NewValidationError("category", "must be a valid category")
	}
	if !l.Postage.IsValid() {
		return domainerrors.NewValidationError("postage", "must be a valid postage type")
	}

	return nil
}

// PriceCents returns the price in integer cents for payment-facing callers.
func (l *Listing) PriceCents() int64 {
	return l.Price.Mul(decimal.NewFromInt(100)).IntPart()
}
