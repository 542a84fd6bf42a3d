// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddressKind distinguishes the role an address plays for its owning profile.
type AddressKind string

const (
	// AddressKindBilling indicates the profile's billing address.
	AddressKindBilling AddressKind = "billing"
	// AddressKindShipping indicates the profile's shipping address.
	AddressKindShipping AddressKind = "shipping"
)

// String returns the string representation of the AddressKind.
func (k AddressKind) String() string {
	return string(k)
}

// IsValid checks if the AddressKind is a valid value.
func (k AddressKind) IsValid() bool {
	switch k {
	case AddressKindBilling, AddressKindShipping:
		return true
	default:
		return false
	}
}

// Address is the core entity for a physical location owned by a profile.
// A profile holds at most one billing and one shipping address, each a
// distinct Address instance.
//
// Latitude and Longitude are set together by geocoding resolution or not at
// all; a half-resolved coordinate never exists.
type Address struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	ProfileID   uuid.UUID   // The ID of the profile that owns this address.
	Kind        AddressKind // Whether this is the billing or shipping address.
	HouseNumber string      // Street number, e.g., "42".
	StreetName  string      // Street name, e.g., "Wallaby Way".
	TownSuburb  string      // Town or suburb.
	City        string      // City.
	State       string      // State or province.
	PostalCode  string      // Postal or ZIP code.
	CountryCode string      // ISO 3166-1 alpha-2 country code.
	Latitude    *float64    // Resolved geographic latitude, nil until geocoded.
	Longitude   *float64    // Resolved geographic longitude, nil until geocoded.
	CreatedAt   time.Time   // Timestamp of when this address was created.
	UpdatedAt   time.Time   // Timestamp of the last modification.
}

// CountryName expands the ISO country code through the local lookup table.
// Unknown or blank codes return an empty string.
func (a *Address) CountryName() string {
	name, ok := CountryName(a.CountryCode)
	if !ok {
		return ""
	}

	return name
}

// FullAddress joins the non-blank address components into the canonical,
// street-level display string. Segments are trimmed and comma-separated;
// empty segments are skipped so the result never contains consecutive
// separators.
func (a *Address) FullAddress() string {
	segments := make([]string, 0, 5)

	houseStreet := strings.TrimSpace(a.HouseNumber + " " + a.StreetName)
	if houseStreet != "" {
		segments = append(segments, houseStreet)
	}
	if suburb := strings.TrimSpace(a.TownSuburb); suburb != "" {
		segments = append(segments, suburb)
	}
	if city := strings.TrimSpace(a.City); city != "" {
		segments = append(segments, city)
	}
	statePostal := strings.TrimSpace(strings.TrimSpace(a.State) + " " + strings.TrimSpace(a.PostalCode))
	if statePostal != "" {
		segments = append(segments, statePostal)
	}
	if country := a.CountryName(); country != "" {
		segments = append(segments, country)
	}

	return strings.Join(segments, ", ")
}

// PublicAddress joins the non-blank address components into the buyer-facing
// display string. It is a separate construction routine from FullAddress, not
// a filtered variant: house number, street name and postal code never enter
// the output, so the public tier cannot leak street-level detail.
func (a *Address) PublicAddress() string {
	segments := make([]string, 0, 4)

	if suburb := strings.TrimSpace(a.TownSuburb); suburb != "" {
		segments = append(segments, suburb)
	}
	if city := strings.TrimSpace(a.City); city != "" {
		segments = append(segments, city)
	}
	if state := strings.TrimSpace(a.State); state != "" {
		segments = append(segments, state)
	}
	if country := a.CountryName(); country != "" {
		segments = append(segments, country)
	}

	return strings.Join(segments, ", ")
}

// Coordinate returns the resolved geographic point in (lon, lat) order.
// ok is false while the address has not been geocoded; callers must treat a
// missing coordinate as unknown, never as the zero point.
func (a *Address) Coordinate() (orb.Point, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*a.Longitude, *a.Latitude}, true
}

// SetCoordinate stores a resolved geographic point atomically.
func (a *Address) SetCoordinate(point orb.Point) {
	lat, lon := point.Lat(), point.Lon()
	a.Latitude = &lat
	a.Longitude = &lon
}

// ClearCoordinate drops both halves of the coordinate pair.
func (a *Address) ClearCoordinate() {
	a.Latitude = nil
	a.Longitude = nil
}
