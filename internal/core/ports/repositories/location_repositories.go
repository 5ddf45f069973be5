package repositories

import (
	"context"
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
)

// LocationReader defines read operations for authorized location data.
type LocationReader interface {
	// FindLocationByID retrieves a specific location by its ID.
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves all configured locations, active or not.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// ListActiveLocations retrieves fixed offices with the active flag set plus
	// field assignments whose validity window contains asOf's date.
	ListActiveLocations(ctx context.Context, asOf time.Time) ([]domain.Location, error)
}

// LocationWriter defines write operations for authorized location data.
type LocationWriter interface {
	// SaveLocation persists a new location.
	SaveLocation(ctx context.Context, location domain.Location) error

	// UpdateLocation updates an existing location in place.
	UpdateLocation(ctx context.Context, location domain.Location) error

	// DeactivateLocation clears the active flag (soft delete).
	DeactivateLocation(ctx context.Context, locationID string, updaterUserID string, at time.Time) error
}

// LocationRepositoryFacade combines all location repository interfaces.
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
