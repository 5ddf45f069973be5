package services

import (
	"context"
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// LocationReaderSvc defines read operations for authorized locations.
type LocationReaderSvc interface {
	// GetLocationByID retrieves a specific location.
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves all configured locations.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// ListActiveLocations retrieves the locations valid for attendance on asOf.
	ListActiveLocations(ctx context.Context, asOf time.Time) ([]domain.Location, error)
}

// LocationWriterSvc defines write operations for authorized locations.
type LocationWriterSvc interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)

	// UpdateLocation applies the non-nil fields of req to an existing location.
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error)

	// DeactivateLocation soft-deletes a location via its active flag.
	DeactivateLocation(ctx context.Context, locationID string, updaterUserID string) error
}

// LocationSvcFacade combines all location service interfaces.
type LocationSvcFacade interface {
	LocationReaderSvc
	LocationWriterSvc
}
