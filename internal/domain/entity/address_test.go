package entity

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sydneyAddress() *Address {
	return &Address{
		Kind:        AddressKindBilling,
		HouseNumber: "42",
		StreetName:  "Wallaby Way",
		TownSuburb:  "Manly",
		City:        "Sydney",
		State:       "NSW",
		PostalCode:  "2095",
		CountryCode: "AU",
	}
}

func TestAddressFullAddress(t *testing.T) {
	assert.Equal(t, "42 Wallaby Way, Manly, Sydney, NSW 2095, Australia", sydneyAddress().FullAddress())
}

func TestAddressFullAddress_SkipsBlankSegments(t *testing.T) {
	address := &Address{City: "Sydney", CountryCode: "AU"}
	assert.Equal(t, "Sydney, Australia", address.FullAddress())

	address = &Address{StreetName: "Wallaby Way", City: "Sydney"}
	assert.Equal(t, "Wallaby Way, Sydney", address.FullAddress())

	empty := &Address{}
	assert.Equal(t, "", empty.FullAddress())
}

func TestAddressPublicAddress_OmitsStreetLevelDetail(t *testing.T) {
	address := sydneyAddress()
	public := address.PublicAddress()

	assert.Equal(t, "Manly, Sydney, NSW, Australia", public)
	assert.NotContains(t, public, address.HouseNumber)
	assert.NotContains(t, public, address.StreetName)
	assert.NotContains(t, public, address.PostalCode)
}

func TestAddressCountryName_UnknownCode(t *testing.T) {
	address := sydneyAddress()
	address.CountryCode = "XX"

	assert.Equal(t, "", address.CountryName())
	assert.Equal(t, "42 Wallaby Way, Manly, Sydney, NSW 2095", address.FullAddress())
}

func TestAddressCoordinate(t *testing.T) {
	address := sydneyAddress()

	_, ok := address.Coordinate()
	assert.False(t, ok)

	address.SetCoordinate(orb.Point{151.2093, -33.8688})
	point, ok := address.Coordinate()
	require.True(t, ok)
	assert.InDelta(t, -33.8688, point.Lat(), 1e-9)
	assert.InDelta(t, 151.2093, point.Lon(), 1e-9)

	address.ClearCoordinate()
	_, ok = address.Coordinate()
	assert.False(t, ok)
	assert.Nil(t, address.Latitude)
	assert.Nil(t, address.Longitude)
}

func TestAddressKindIsValid(t *testing.T) {
	assert.True(t, AddressKindBilling.IsValid())
	assert.True(t, AddressKindShipping.IsValid())
	assert.False(t, AddressKind("office").IsValid())
}
