package dto

import (
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
)

// CreateLocationRequest defines the data needed to create an authorized location.
// Dates use "2006-01-02" and are only meaningful for field-assignment sites.
type CreateLocationRequest struct {
	Name         string   `json:"name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	RadiusMeters int      `json:"radius_m" binding:"required,gt=0"`
	Kind         string   `json:"kind" binding:"required,oneof=fixed-office field-assignment"`
	ValidFrom    string   `json:"valid_from,omitempty"`
	ValidUntil   string   `json:"valid_until,omitempty"`
}

// UpdateLocationRequest defines the mutable fields of a location. Nil fields
// are left unchanged.
type UpdateLocationRequest struct {
	Name         *string  `json:"name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	RadiusMeters *int     `json:"radius_m,omitempty" binding:"omitempty,gt=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
	ValidFrom    *string  `json:"valid_from,omitempty"`
	ValidUntil   *string  `json:"valid_until,omitempty"`
}

// LocationResponse defines the data returned for a location.
type LocationResponse struct {
	LocationID   string  `json:"location_id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_m"`
	Kind         string  `json:"kind"`
	IsActive     bool    `json:"is_active"`
	ValidFrom    *string `json:"valid_from,omitempty"`
	ValidUntil   *string `json:"valid_until,omitempty"`
}

// ToLocationResponse converts a domain Location to its response form.
func ToLocationResponse(l *domain.Location) LocationResponse {
	resp := LocationResponse{
		LocationID:   l.LocationID,
		Name:         l.Name,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		RadiusMeters: l.RadiusMeters,
		Kind:         string(l.Kind),
		IsActive:     l.IsActive,
	}
	if l.ValidFrom != nil {
		s := l.ValidFrom.Format("2006-01-02")
		resp.ValidFrom = &s
	}
	if l.ValidUntil != nil {
		s := l.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &s
	}
	return resp
}

// ToListLocationResponse converts a slice of domain Locations.
func ToListLocationResponse(locations []domain.Location) []LocationResponse {
	res := make([]LocationResponse, len(locations))
	for i := range locations {
		res[i] = ToLocationResponse(&locations[i])
	}
	return res
}

// ParseDateField parses an optional "2006-01-02" request field.
func ParseDateField(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
