package domain

import "time"

// LocationKind distinguishes permanent offices from dated field assignments.
type LocationKind string

const (
	LocationKindFixedOffice     LocationKind = "fixed-office"
	LocationKindFieldAssignment LocationKind = "field-assignment"
)

// Location is an authorized attendance site: a circular geofence centered on
// Latitude/Longitude with RadiusMeters.
type Location struct {
	LocationID   string       `json:"locationID"`
	Name         string       `json:"name"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	RadiusMeters int          `json:"radiusMeters"`
	Kind         LocationKind `json:"kind"`
	IsActive     bool         `json:"isActive"`
	// ValidFrom/ValidUntil bound field-assignment sites. Nil for fixed offices.
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
	AuditFields
}

// Center returns the geofence center coordinate.
func (l Location) Center() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ActiveOn reports whether the location accepts attendance on the given date.
// Fixed offices only need the active flag; field assignments additionally
// require the date to fall inside their validity window.
func (l Location) ActiveOn(asOf time.Time) bool {
	if !l.IsActive {
		return false
	}
	if l.Kind != LocationKindFieldAssignment {
		return true
	}
	day := DateOf(asOf)
	if l.ValidFrom != nil && day.Before(DateOf(*l.ValidFrom)) {
		return false
	}
	if l.ValidUntil != nil && day.After(DateOf(*l.ValidUntil)) {
		return false
	}
	return true
}

// DisplayName is the name reported back to the client; field-assignment
// sites carry the " (Dinas)" marker.
func (l Location) DisplayName() string {
	if l.Kind == LocationKindFieldAssignment {
		return l.Name + " (Dinas)"
	}
	return l.Name
}
