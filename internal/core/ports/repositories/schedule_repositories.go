package repositories

import (
	"context"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
)

// ScheduleReader defines read operations for work schedule data.
type ScheduleReader interface {
	// FindScheduleByWeekday retrieves the schedule row for a weekday name
	// (Senin..Minggu). Returns apperrors.ErrNotFound when no row exists.
	FindScheduleByWeekday(ctx context.Context, weekday string) (*domain.WorkSchedule, error)

	// ListSchedules retrieves all configured weekday schedules.
	ListSchedules(ctx context.Context) ([]domain.WorkSchedule, error)
}

// ScheduleWriter defines write operations for work schedule data.
type ScheduleWriter interface {
	// UpsertSchedule inserts or replaces the schedule row for its weekday.
	UpsertSchedule(ctx context.Context, schedule domain.WorkSchedule) error
}

// ScheduleRepositoryFacade combines all schedule repository interfaces.
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
