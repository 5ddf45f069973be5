package geo_test

import (
	"testing"

	"github.com/presensi-app/presensi-backend/internal/utils/geo"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	d := geo.HaversineDistance(-6.2088, 106.8456, -6.2088, 106.8456)
	assert.Zero(t, d)
}

func TestHaversineDistance_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.19 km on a sphere of radius 6371 km.
	d := geo.HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestHaversineDistance_SmallOffset(t *testing.T) {
	// 0.000899 degrees of latitude is just under 100 meters.
	d := geo.HaversineDistance(-6.2088, 106.8456, -6.2088+0.000899, 106.8456)
	assert.InDelta(t, 99.96, d, 0.2)
	assert.LessOrEqual(t, d, 100.0)

	// 0.00091 degrees is just over 100 meters.
	d = geo.HaversineDistance(-6.2088, 106.8456, -6.2088+0.00091, 106.8456)
	assert.Greater(t, d, 100.0)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := geo.HaversineDistance(-6.2088, 106.8456, -6.1754, 106.8272)
	d2 := geo.HaversineDistance(-6.1754, 106.8272, -6.2088, 106.8456)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
}
