package services

import (
	"context"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// ScheduleReaderSvc defines read operations for weekday work schedules.
type ScheduleReaderSvc interface {
	// ListSchedules retrieves all configured weekday schedules.
	ListSchedules(ctx context.Context) ([]domain.WorkSchedule, error)

	// GetScheduleByWeekday retrieves the row for one weekday name.
	GetScheduleByWeekday(ctx context.Context, weekday string) (*domain.WorkSchedule, error)
}

// ScheduleWriterSvc defines write operations for weekday work schedules.
type ScheduleWriterSvc interface {
	// UpsertSchedule inserts or replaces the schedule for a weekday.
	UpsertSchedule(ctx context.Context, weekday string, req dto.UpsertScheduleRequest, updaterUserID string) (*domain.WorkSchedule, error)
}

// ScheduleSvcFacade combines all schedule service interfaces.
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
}
