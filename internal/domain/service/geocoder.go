// Package service defines interfaces for external capabilities consumed by
// the use case layer.
package service

import (
	"context"

	"bazaar/internal/errors"

	"github.com/paulmach/orb"
)

// ErrNoGeocodingResult is returned when the provider resolves the address to
// no coordinate. Callers treat this as a degraded save, not a failure.
var ErrNoGeocodingResult = errors.New("no geocoding result")

// Geocoder defines the interface for resolving a display address string to a
// geographic coordinate. Providers are network-bound; implementations must
// honor context cancellation and carry a bounded timeout.
type Geocoder interface {
	// Geocode resolves the canonical display address to a (lon, lat) point.
	// Returns ErrNoGeocodingResult when the provider has no match.
	Geocode(ctx context.Context, displayAddress string) (orb.Point, error)
}
