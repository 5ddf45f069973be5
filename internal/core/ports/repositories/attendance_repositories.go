package repositories

import (
	"context"
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	// FindRecordByUserAndDate retrieves the single record for (user, date).
	// Returns apperrors.ErrNotFound when the user has no record for that date.
	FindRecordByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error)

	// ListRecentRecords retrieves the user's most recent records, newest first.
	ListRecentRecords(ctx context.Context, userID string, limit int) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	// SaveCheckIn inserts the day's record. The store enforces a unique
	// (user_id, attendance_date) constraint; a violation is reported as
	// apperrors.ErrDuplicate.
	SaveCheckIn(ctx context.Context, record domain.AttendanceRecord) error

	// UpdateCheckOut fills the check-out columns of the existing record.
	UpdateCheckOut(ctx context.Context, record domain.AttendanceRecord) error
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
