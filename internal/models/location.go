package models

import "time"

// Location mirrors the locations table.
type Location struct {
	LocationID   string     `json:"locationID"`
	Name         string     `json:"name"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	RadiusMeters int        `json:"radiusMeters"`
	Kind         string     `json:"kind"`
	IsActive     bool       `json:"isActive"`
	ValidFrom    *time.Time `json:"validFrom,omitempty"`
	ValidUntil   *time.Time `json:"validUntil,omitempty"`
	AuditFields
}
