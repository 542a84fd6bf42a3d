// Package geo provides great-circle distance math for proximity features.
package geo

import (
	"math"

	"bazaar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers. Points are in orb's (lon, lat) order.
func DistanceKm(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// AddressDistanceKm calculates the distance between two resolved addresses.
// ok is false when either address has no coordinate; callers must treat a
// missing result as unknown distance, never as zero.
func AddressDistanceKm(a, b *entity.Address) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}

	pointA, okA := a.Coordinate()
	pointB, okB := b.Coordinate()
	if !okA || !okB {
		return 0, false
	}

	return DistanceKm(pointA, pointB), true
}
