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
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// scheduleService owns the jam-kerja weekday configuration.
type scheduleService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepositoryFacade
}

// NewScheduleService creates the work schedule service.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) ListSchedules(ctx context.Context) ([]domain.WorkSchedule, error) {
	schedules, err := s.scheduleRepo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if schedules == nil {
		return []domain.WorkSchedule{}, nil
	}
	return schedules, nil
}

func (s *scheduleService) GetScheduleByWeekday(ctx context.Context, weekday string) (*domain.WorkSchedule, error) {
	if !domain.ValidWeekdayName(weekday) {
		return nil, fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidation, weekday)
	}
	return s.scheduleRepo.FindScheduleByWeekday(ctx, weekday)
}

func (s *scheduleService) UpsertSchedule(ctx context.Context, weekday string, req dto.UpsertScheduleRequest, updaterUserID string) (*domain.WorkSchedule, error) {
	if !domain.ValidWeekdayName(weekday) {
		return nil, fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidation, weekday)
	}

	entry, err := domain.ParseClock(req.JamMasuk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	cutoff, err := domain.ParseClock(req.BatasTerlambat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	exit, err := domain.ParseClock(req.JamKeluar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if cutoff < entry {
		return nil, fmt.Errorf("%w: late cutoff precedes entry time", apperrors.ErrValidation)
	}
	if exit < cutoff {
		return nil, fmt.Errorf("%w: exit time precedes late cutoff", apperrors.ErrValidation)
	}

	now := time.Now()
	schedule := domain.WorkSchedule{
		Weekday:      weekday,
		EntryTime:    req.JamMasuk,
		LateCutoff:   req.BatasTerlambat,
		ExitTime:     req.JamKeluar,
		IsWorkingDay: *req.HariKerja,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.scheduleRepo.UpsertSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to upsert schedule for %s: %w", weekday, err)
	}

	s.LogInfo(ctx, "Work schedule upserted", slog.String("weekday", weekday))
	return &schedule, nil
}
