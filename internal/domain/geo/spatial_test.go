package geo

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(orb.Point{0, 0}, orb.Point{0, 0}))
}

func TestDistanceKm_QuarterGreatCircle(t *testing.T) {
	// Equator to 90 degrees of longitude is a quarter circle.
	got := DistanceKm(orb.Point{0, 0}, orb.Point{90, 0})
	assert.InDelta(t, 10007.5, got, 1.0)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := orb.Point{121.5654, 25.0330}
	b := orb.Point{120.6736, 24.1477}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestAddressDistanceKm_Resolved(t *testing.T) {
	a := &entity.Address{}
	a.SetCoordinate(orb.Point{0, 0})
	b := &entity.Address{}
	b.SetCoordinate(orb.Point{90, 0})

	km, ok := AddressDistanceKm(a, b)
	assert.True(t, ok)
	assert.InDelta(t, 10007.5, km, 1.0)
}

func TestAddressDistanceKm_Unresolved(t *testing.T) {
	resolved := &entity.Address{}
	resolved.SetCoordinate(orb.Point{10, 10})
	unresolved := &entity.Address{}

	_, ok := AddressDistanceKm(resolved, unresolved)
	assert.False(t, ok, "missing coordinates must report unknown, not zero")

	_, ok = AddressDistanceKm(nil, resolved)
	assert.False(t, ok)
}
