package services

import (
	"context"
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// GeofenceSvc resolves a reported coordinate against the active location set.
type GeofenceSvc interface {
	// Match returns the first active location whose radius contains the
	// coordinate, in registry iteration order. Returns
	// apperrors.ErrInvalidCoordinate for malformed coordinates and
	// apperrors.ErrOutsideAuthorizedArea when no geofence contains it.
	Match(ctx context.Context, coord domain.Coordinate, asOf time.Time) (*domain.GeofenceMatch, error)
}

// AttendanceRecorderSvc applies check-in/check-out events.
type AttendanceRecorderSvc interface {
	// RecordAttendance validates the coordinate, derives the status and
	// performs the state transition for (user, date-of(timestamp)).
	RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest, at time.Time) (*domain.AttendanceRecord, *domain.GeofenceMatch, error)
}

// AttendanceReaderSvc reads attendance records.
type AttendanceReaderSvc interface {
	// GetDailyRecord retrieves the record for (user, date), nil when absent,
	// plus the user's recent history.
	GetDailyRecord(ctx context.Context, userID string, date time.Time, historyLimit int) (*domain.AttendanceRecord, []domain.AttendanceRecord, error)
}

// AttendanceSvcFacade combines the attendance service interfaces.
type AttendanceSvcFacade interface {
	AttendanceRecorderSvc
	AttendanceReaderSvc
}
