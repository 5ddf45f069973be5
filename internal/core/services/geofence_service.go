package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/utils/geo"
)

// geofenceService resolves reported coordinates against the registry of
// active authorized locations.
type geofenceService struct {
	BaseService
	locationRepo portsrepo.LocationReader
}

// NewGeofenceService creates a GeofenceSvc backed by the given location reader.
func NewGeofenceService(locationRepo portsrepo.LocationReader) portssvc.GeofenceSvc {
	return &geofenceService{locationRepo: locationRepo}
}

var _ portssvc.GeofenceSvc = (*geofenceService)(nil)

// Match validates the coordinate and returns the first active location whose
// radius contains it. Candidates are checked in registry iteration order and
// the first hit wins, not the nearest; under overlapping geofences this
// ordering is part of the observable behavior and must stay stable.
func (s *geofenceService) Match(ctx context.Context, coord domain.Coordinate, asOf time.Time) (*domain.GeofenceMatch, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.ListActiveLocations(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}

	for _, loc := range locations {
		center := loc.Center()
		distance := geo.HaversineDistance(coord.Latitude, coord.Longitude, center.Latitude, center.Longitude)
		if distance <= float64(loc.RadiusMeters) {
			s.LogInfo(ctx, "Coordinate matched geofence",
				slog.String("location_id", loc.LocationID),
				slog.Float64("distance_m", distance))
			return &domain.GeofenceMatch{
				LocationID:     loc.LocationID,
				LocationName:   loc.DisplayName(),
				DistanceMeters: distance,
			}, nil
		}
	}

	return nil, apperrors.ErrOutsideAuthorizedArea
}
