package impl

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListingDocument_CoordinatePairing(t *testing.T) {
	sellerID := uuid.New()
	listing := availableListing(sellerID)

	billing := &entity.Address{
		Kind:      entity.AddressKindBilling,
		Latitude:  floatPtr(25.0330),
		Longitude: floatPtr(121.5654),
	}
	shipping := &entity.Address{
		Kind:      entity.AddressKindShipping,
		Latitude:  floatPtr(-33.8688),
		Longitude: floatPtr(151.2093),
	}
	seller := &entity.User{
		ID:   sellerID,
		Name: "Peter",
		Profile: &entity.Profile{
			BillingAddress:  billing,
			ShippingAddress: shipping,
		},
	}

	doc := BuildListingDocument(listing, seller, 3)

	assert.Equal(t, listing.ID.String(), doc.ObjectID)
	assert.Equal(t, int64(3), doc.ViewCount)

	// The document coordinate pairs the billing latitude with the shipping
	// longitude.
	require.NotNil(t, doc.Latitude)
	require.NotNil(t, doc.Longitude)
	assert.Equal(t, *billing.Latitude, *doc.Latitude)
	assert.Equal(t, *shipping.Longitude, *doc.Longitude)
}

func TestBuildListingDocument_SellerName(t *testing.T) {
	sellerID := uuid.New()
	listing := availableListing(sellerID)

	t.Run("profile full name wins", func(t *testing.T) {
		seller := &entity.User{
			ID:      sellerID,
			Name:    "Peter",
			Profile: &entity.Profile{FullName: "Pete's Comics"},
		}
		doc := BuildListingDocument(listing, seller, 0)
		assert.Equal(t, "Pete's Comics", doc.SellerName)
	})

	t.Run("falls back to account name", func(t *testing.T) {
		seller := &entity.User{
			ID:      sellerID,
			Name:    "Peter",
			Profile: &entity.Profile{},
		}
		doc := BuildListingDocument(listing, seller, 0)
		assert.Equal(t, "Peter", doc.SellerName)
	})

	t.Run("no profile", func(t *testing.T) {
		seller := &entity.User{ID: sellerID, Name: "Peter"}
		doc := BuildListingDocument(listing, seller, 0)
		assert.Equal(t, "Peter", doc.SellerName)
		assert.Nil(t, doc.Latitude)
		assert.Nil(t, doc.Longitude)
	})
}

func TestBuildListingDocument_NilSeller(t *testing.T) {
	listing := availableListing(uuid.New())

	doc := BuildListingDocument(listing, nil, 0)

	assert.Equal(t, listing.ID.String(), doc.ObjectID)
	assert.Equal(t, listing.Name, doc.Name)
	assert.Empty(t, doc.SellerName)
	assert.Nil(t, doc.Latitude)
	assert.Nil(t, doc.Longitude)
}
