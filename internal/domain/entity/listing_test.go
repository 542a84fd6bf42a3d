package entity

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListing() *Listing {
	return &Listing{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		Name:        "Amazing Spider-Man #300",
		Price:       decimal.NewFromInt(120),
		Description: "First appearance of Venom.",
		Condition:   ConditionGood,
		Status:      StatusAvailable,
		Category:    CategoryComics,
		Postage:     PostageByWeight,
	}
}

func TestListingValidate(t *testing.T) {
	require.NoError(t, validListing().Validate())

	tests := []struct {
		name      string
		mutate    func(*Listing)
		wantField string
	}{
		{"missing name", func(l *Listing) { l.Name = "" }, "name"},
		{"negative price", func(l *Listing) { l.Price = decimal.NewFromInt(-1) }, "price"},
		{"missing description", func(l *Listing) { l.Description = "" }, "description"},
		{"unknown condition", func(l *Listing) { l.Condition = "Shredded" }, "condition"},
		{"unknown status", func(l *Listing) { l.Status = "Lost" }, "status"},
		{"unknown category", func(l *Listing) { l.Category = "Groceries" }, "category"},
		{"unknown postage", func(l *Listing) { l.Postage = "Carrier Pigeon" }, "postage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := validListing()
			tt.mutate(listing)

			var vErr *domainerrors.ValidationError
			require.ErrorAs(t, listing.Validate(), &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestListingValidate_ZeroPriceAllowed(t *testing.T) {
	listing := validListing()
	listing.Price = decimal.Zero
	assert.NoError(t, listing.Validate())
}

func TestListingPriceCents(t *testing.T) {
	listing := validListing()
	listing.Price = decimal.NewFromFloat(12.75)
	assert.Equal(t, int64(1275), listing.PriceCents())
}

func TestListingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ListingStatus
		to      ListingStatus
		allowed bool
	}{
		{StatusAvailable, StatusAvailable, true},
		{StatusAvailable, StatusCheckedOut, true},
		{StatusAvailable, StatusSold, false},
		{StatusCheckedOut, StatusSold, true},
		{StatusCheckedOut, StatusAvailable, true},
		{StatusCheckedOut, StatusCheckedOut, true},
		{StatusSold, StatusAvailable, false},
		{StatusSold, StatusCheckedOut, false},
		{StatusSold, StatusSold, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
