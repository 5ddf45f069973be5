package domain

import (
	"fmt"
	"math"

	"github.com/presensi-app/presensi-backend/internal/apperrors"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects NaN components and values outside the valid
// latitude [-90,90] and longitude [-180,180] ranges.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return fmt.Errorf("%w: latitude or longitude is NaN", apperrors.ErrInvalidCoordinate)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", apperrors.ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", apperrors.ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}
