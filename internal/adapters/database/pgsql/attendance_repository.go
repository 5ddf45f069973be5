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

// PgxAttendanceRepository persists the per-(user, date) attendance records.
// The table carries UNIQUE(user_id, attendance_date); a violated insert is
// reported as apperrors.ErrDuplicate so the service can translate it.
type PgxAttendanceRepository struct {
	BaseRepository
}

// NewAttendanceRepository creates a repository for attendance records.
func NewAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `attendance_id, user_id, attendance_date,
	checkin_at, checkin_lat, checkin_lon, checkin_location,
	checkout_at, checkout_lat, checkout_lon, checkout_location,
	status, note, photo, created_at, created_by, last_updated_at, last_updated_by`

func scanAttendance(row pgx.Row) (models.AttendanceRecord, error) {
	var m models.AttendanceRecord
	err := row.Scan(
		&m.AttendanceID,
		&m.UserID,
		&m.Date,
		&m.CheckInAt,
		&m.CheckInLat,
		&m.CheckInLon,
		&m.CheckInLocation,
		&m.CheckOutAt,
		&m.CheckOutLat,
		&m.CheckOutLon,
		&m.CheckOutLocation,
		&m.Status,
		&m.Note,
		&m.Photo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCheckIn inserts the day's record.
func (r *PgxAttendanceRepository) SaveCheckIn(ctx context.Context, record domain.AttendanceRecord) error {
	m := mapping.ToModelAttendanceRecord(record)
	query := `
		INSERT INTO attendance_records (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.UserID, m.Date,
		m.CheckInAt, m.CheckInLat, m.CheckInLon, m.CheckInLocation,
		m.CheckOutAt, m.CheckOutLat, m.CheckOutLon, m.CheckOutLocation,
		m.Status, m.Note, m.Photo, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save check-in for user %s: %w", m.UserID, err)
	}
	return nil
}

// UpdateCheckOut fills the check-out columns of the existing record. The
// WHERE clause refuses to overwrite an already filled check-out.
func (r *PgxAttendanceRepository) UpdateCheckOut(ctx context.Context, record domain.AttendanceRecord) error {
	m := mapping.ToModelAttendanceRecord(record)
	query := `
		UPDATE attendance_records SET
			checkout_at = $2, checkout_lat = $3, checkout_lon = $4, checkout_location = $5,
			note = $6, last_updated_at = $7, last_updated_by = $8
		WHERE attendance_id = $1 AND checkout_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.CheckOutAt, m.CheckOutLat, m.CheckOutLon, m.CheckOutLocation,
		m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save check-out for user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindRecordByUserAndDate retrieves the single record for (user, date).
func (r *PgxAttendanceRepository) FindRecordByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE user_id = $1 AND attendance_date = $2::date;`
	m, err := scanAttendance(r.Pool.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record for user %s: %w", userID, err)
	}
	d := mapping.ToDomainAttendanceRecord(m)
	return &d, nil
}

// ListRecentRecords retrieves the user's most recent records, newest first.
func (r *PgxAttendanceRepository) ListRecentRecords(ctx context.Context, userID string, limit int) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE user_id = $1 ORDER BY attendance_date DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AttendanceRecord, error) {
		return scanAttendance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance history: %w", err)
	}
	return mapping.ToDomainAttendanceRecordSlice(ms), nil
}
