package mapping

import (
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/models"
)

// ToModelLocation converts a domain Location to a model Location.
func ToModelLocation(d domain.Location) models.Location {
	return models.Location{
		LocationID:   d.LocationID,
		Name:         d.Name,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		RadiusMeters: d.RadiusMeters,
		Kind:         string(d.Kind),
		IsActive:     d.IsActive,
		ValidFrom:    d.ValidFrom,
		ValidUntil:   d.ValidUntil,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLocation converts a model Location to a domain Location.
func ToDomainLocation(m models.Location) domain.Location {
	return domain.Location{
		LocationID:   m.LocationID,
		Name:         m.Name,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		RadiusMeters: m.RadiusMeters,
		Kind:         domain.LocationKind(m.Kind),
		IsActive:     m.IsActive,
		ValidFrom:    m.ValidFrom,
		ValidUntil:   m.ValidUntil,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLocationSlice converts a slice of model Locations to domain Locations.
func ToDomainLocationSlice(ms []models.Location) []domain.Location {
	ds := make([]domain.Location, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLocation(m)
	}
	return ds
}
