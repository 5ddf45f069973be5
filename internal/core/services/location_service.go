package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// locationService owns the registry of authorized attendance sites.
type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates the location registry service.
func NewLocationService(locationRepo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func validateGeometry(lat, lon float64, radius int) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", apperrors.ErrValidation)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", apperrors.ErrValidation)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be positive", apperrors.ErrValidation)
	}
	return nil
}

// validateWindow enforces the kind-specific validity window rules: a
// field-assignment site always carries a non-inverted window, a fixed office
// never carries one.
func validateWindow(kind domain.LocationKind, validFrom, validUntil *time.Time) error {
	if kind == domain.LocationKindFieldAssignment {
		if validFrom == nil || validUntil == nil {
			return fmt.Errorf("%w: field-assignment locations need a validity window", apperrors.ErrValidation)
		}
		if validUntil.Before(*validFrom) {
			return fmt.Errorf("%w: valid_until precedes valid_from", apperrors.ErrValidation)
		}
		return nil
	}
	if validFrom != nil || validUntil != nil {
		return fmt.Errorf("%w: fixed offices carry no validity window", apperrors.ErrValidation)
	}
	return nil
}

func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	if err := validateGeometry(*req.Latitude, *req.Longitude, req.RadiusMeters); err != nil {
		return nil, err
	}

	kind := domain.LocationKind(req.Kind)
	validFrom, err := dto.ParseDateField(req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid valid_from date", apperrors.ErrValidation)
	}
	validUntil, err := dto.ParseDateField(req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid valid_until date", apperrors.ErrValidation)
	}
	if err := validateWindow(kind, validFrom, validUntil); err != nil {
		return nil, err
	}

	now := time.Now()
	location := domain.Location{
		LocationID:   uuid.NewString(),
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Kind:         kind,
		IsActive:     true,
		ValidFrom:    validFrom,
		ValidUntil:   validUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.LogInfo(ctx, "Location created",
		slog.String("location_id", location.LocationID),
		slog.String("kind", string(kind)))
	return &location, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Latitude != nil {
		location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		location.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		t, err := dto.ParseDateField(*req.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid valid_from date", apperrors.ErrValidation)
		}
		location.ValidFrom = t
	}
	if req.ValidUntil != nil {
		t, err := dto.ParseDateField(*req.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid valid_until date", apperrors.ErrValidation)
		}
		location.ValidUntil = t
	}

	if err := validateGeometry(location.Latitude, location.Longitude, location.RadiusMeters); err != nil {
		return nil, err
	}
	if err := validateWindow(location.Kind, location.ValidFrom, location.ValidUntil); err != nil {
		return nil, err
	}

	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = updaterUserID

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		return nil, fmt.Errorf("failed to update location %s: %w", locationID, err)
	}
	return location, nil
}

func (s *locationService) DeactivateLocation(ctx context.Context, locationID string, updaterUserID string) error {
	if err := s.locationRepo.DeactivateLocation(ctx, locationID, updaterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate location %s: %w", locationID, err)
	}
	s.LogInfo(ctx, "Location deactivated", slog.String("location_id", locationID))
	return nil
}

func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	return s.locationRepo.FindLocationByID(ctx, locationID)
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

func (s *locationService) ListActiveLocations(ctx context.Context, asOf time.Time) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListActiveLocations(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}
