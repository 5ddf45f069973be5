package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// lockStripes bounds the number of mutexes guarding (user, date) keys.
const lockStripes = 64

// attendanceService owns the daily per-user attendance record and its
// NoRecord -> CheckedIn -> CheckedOut transitions. Writes for the same
// (user, date) key are serialized through a striped mutex on top of the
// store's unique constraint, so two concurrent check-ins cannot both succeed.
type attendanceService struct {
	BaseService
	geofence       portssvc.GeofenceSvc
	scheduleRepo   portsrepo.ScheduleReader
	attendanceRepo portsrepo.AttendanceRepositoryFacade

	locks [lockStripes]sync.Mutex
}

// NewAttendanceService creates the attendance recorder.
func NewAttendanceService(
	geofence portssvc.GeofenceSvc,
	scheduleRepo portsrepo.ScheduleReader,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		geofence:       geofence,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) lockFor(userID string, date time.Time) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	h.Write([]byte(date.Format("2006-01-02")))
	return &s.locks[h.Sum32()%lockStripes]
}

// RecordAttendance runs the full check-in/check-out pipeline: geofence
// validation first, then the state transition, then exactly one write.
// No mutation happens when validation fails.
func (s *attendanceService) RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest, at time.Time) (*domain.AttendanceRecord, *domain.GeofenceMatch, error) {
	direction := domain.AttendanceDirection(req.JenisPresensi)
	if !direction.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown jenis_presensi %q", apperrors.ErrValidation, req.JenisPresensi)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, nil, fmt.Errorf("%w: latitude and longitude are required", apperrors.ErrInvalidCoordinate)
	}
	coord := domain.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	match, err := s.geofence.Match(ctx, coord, at)
	if err != nil {
		return nil, nil, err
	}

	date := domain.DateOf(at)
	lock := s.lockFor(req.UserID, date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.attendanceRepo.FindRecordByUserAndDate(ctx, req.UserID, date)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to read attendance record: %w", err)
	}

	switch direction {
	case domain.DirectionCheckIn:
		record, err := s.checkIn(ctx, req, at, date, coord, match, existing)
		return record, match, err
	default:
		record, err := s.checkOut(ctx, req, at, coord, match, existing)
		return record, match, err
	}
}

func (s *attendanceService) checkIn(ctx context.Context, req dto.RecordAttendanceRequest, at, date time.Time, coord domain.Coordinate, match *domain.GeofenceMatch, existing *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	if existing != nil {
		return nil, apperrors.ErrAlreadyCheckedIn
	}

	status, err := s.deriveStatus(ctx, at)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.AttendanceRecord{
		AttendanceID:    uuid.NewString(),
		UserID:          req.UserID,
		Date:            date,
		CheckInAt:       at,
		CheckInCoord:    coord,
		CheckInLocation: match.LocationName,
		Status:          status,
		Note:            req.Keterangan,
		Photo:           req.Foto,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.UserID,
		},
	}

	if err := s.attendanceRepo.SaveCheckIn(ctx, record); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against another check-in for the same day; the
			// unique constraint kept the record single.
			return nil, apperrors.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	s.LogInfo(ctx, "Check-in recorded",
		slog.String("user_id", req.UserID),
		slog.String("location", match.LocationName),
		slog.String("status", string(status)))
	return &record, nil
}

func (s *attendanceService) checkOut(ctx context.Context, req dto.RecordAttendanceRequest, at time.Time, coord domain.Coordinate, match *domain.GeofenceMatch, existing *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	if existing == nil {
		return nil, apperrors.ErrNoCheckInFound
	}
	if existing.CheckedOut() {
		return nil, apperrors.ErrAlreadyCheckedOut
	}
	if at.Before(existing.CheckInAt) {
		return nil, fmt.Errorf("%w: check-out time precedes check-in time", apperrors.ErrValidation)
	}

	record := *existing
	record.CheckOutAt = &at
	record.CheckOutCoord = &coord
	record.CheckOutLocation = &match.LocationName
	if req.Keterangan != "" {
		record.Note = req.Keterangan
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = req.UserID

	if err := s.attendanceRepo.UpdateCheckOut(ctx, record); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against another check-out for the same record; the
			// checkout_at IS NULL guard kept the first one.
			return nil, apperrors.ErrAlreadyCheckedOut
		}
		return nil, fmt.Errorf("failed to save check-out: %w", err)
	}

	s.LogInfo(ctx, "Check-out recorded",
		slog.String("user_id", req.UserID),
		slog.String("location", match.LocationName))
	return &record, nil
}

// deriveStatus classifies a check-in against the weekday's late cutoff.
// A missing schedule row, a non-working day, or an unparseable cutoff all
// default to on-time: schedule configuration must never block attendance.
func (s *attendanceService) deriveStatus(ctx context.Context, at time.Time) (domain.AttendanceStatus, error) {
	weekday := domain.WeekdayName(at)
	schedule, err := s.scheduleRepo.FindScheduleByWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.StatusOnTime, nil
		}
		return "", fmt.Errorf("failed to read work schedule for %s: %w", weekday, err)
	}
	if !schedule.IsWorkingDay {
		return domain.StatusOnTime, nil
	}

	cutoff, err := domain.ParseClock(schedule.LateCutoff)
	if err != nil {
		s.LogWarn(ctx, "Unparseable late cutoff, defaulting to on-time",
			slog.String("weekday", weekday),
			slog.String("cutoff", schedule.LateCutoff))
		return domain.StatusOnTime, nil
	}

	if domain.ClockOf(at) > cutoff {
		return domain.StatusLate, nil
	}
	return domain.StatusOnTime, nil
}

// GetDailyRecord returns the record for (user, date), nil when the user has
// not checked in that day, plus the user's recent history.
func (s *attendanceService) GetDailyRecord(ctx context.Context, userID string, date time.Time, historyLimit int) (*domain.AttendanceRecord, []domain.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindRecordByUserAndDate(ctx, userID, domain.DateOf(date))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to read attendance record: %w", err)
	}

	history, err := s.attendanceRepo.ListRecentRecords(ctx, userID, historyLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	if history == nil {
		history = []domain.AttendanceRecord{}
	}

	return record, history, nil
}
