package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	"github.com/presensi-app/presensi-backend/internal/models"
	"github.com/presensi-app/presensi-backend/internal/utils/mapping"
)

// PgxLocationRepository persists authorized locations.
type PgxLocationRepository struct {
	BaseRepository
}

// NewLocationRepository creates a repository for location data.
func NewLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, name, latitude, longitude, radius_m, kind, is_active,
	valid_from, valid_until, created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (models.Location, error) {
	var m models.Location
	err := row.Scan(
		&m.LocationID,
		&m.Name,
		&m.Latitude,
		&m.Longitude,
		&m.RadiusMeters,
		&m.Kind,
		&m.IsActive,
		&m.ValidFrom,
		&m.ValidUntil,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveLocation inserts a new location row.
func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LocationID, m.Name, m.Latitude, m.Longitude, m.RadiusMeters, m.Kind, m.IsActive,
		m.ValidFrom, m.ValidUntil, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save location %s: %w", m.LocationID, err)
	}
	return nil
}

// UpdateLocation updates an existing location row in place.
func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
		UPDATE locations SET
			name = $2, latitude = $3, longitude = $4, radius_m = $5, is_active = $6,
			valid_from = $7, valid_until = $8, last_updated_at = $9, last_updated_by = $10
		WHERE location_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.LocationID, m.Name, m.Latitude, m.Longitude, m.RadiusMeters, m.IsActive,
		m.ValidFrom, m.ValidUntil, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", m.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateLocation clears the active flag; the row is never deleted while
// attendance records reference its name.
func (r *PgxLocationRepository) DeactivateLocation(ctx context.Context, locationID string, updaterUserID string, at time.Time) error {
	query := `
		UPDATE locations SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE location_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, locationID, at, updaterUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate location %s: %w", locationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLocationByID retrieves a location by its ID.
func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	m, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	d := mapping.ToDomainLocation(m)
	return &d, nil
}

// ListLocations retrieves all configured locations.
func (r *PgxLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}
	return mapping.ToDomainLocationSlice(ms), nil
}

// ListActiveLocations retrieves fixed offices with the active flag set plus
// field assignments whose validity window contains asOf's date. Iteration
// order is the insertion order of the rows; the geofence matcher relies on a
// stable order, not a particular one.
func (r *PgxLocationRepository) ListActiveLocations(ctx context.Context, asOf time.Time) ([]domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE is_active = TRUE
		  AND (kind <> 'field-assignment'
		       OR (valid_from <= $1::date AND valid_until >= $1::date))
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query active locations: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active locations: %w", err)
	}
	return mapping.ToDomainLocationSlice(ms), nil
}
