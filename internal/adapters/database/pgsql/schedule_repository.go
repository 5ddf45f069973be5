package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	"github.com/presensi-app/presensi-backend/internal/models"
	"github.com/presensi-app/presensi-backend/internal/utils/mapping"
)

// PgxScheduleRepository persists weekday work schedules.
type PgxScheduleRepository struct {
	BaseRepository
}

// NewScheduleRepository creates a repository for work schedule data.
func NewScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

const scheduleColumns = `weekday, entry_time, late_cutoff, exit_time, is_working_day,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSchedule(row pgx.Row) (models.WorkSchedule, error) {
	var m models.WorkSchedule
	err := row.Scan(
		&m.Weekday,
		&m.EntryTime,
		&m.LateCutoff,
		&m.ExitTime,
		&m.IsWorkingDay,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertSchedule inserts or replaces the schedule row for its weekday.
func (r *PgxScheduleRepository) UpsertSchedule(ctx context.Context, schedule domain.WorkSchedule) error {
	m := mapping.ToModelWorkSchedule(schedule)
	query := `
		INSERT INTO work_schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (weekday) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			late_cutoff = EXCLUDED.late_cutoff,
			exit_time = EXCLUDED.exit_time,
			is_working_day = EXCLUDED.is_working_day,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Weekday, m.EntryTime, m.LateCutoff, m.ExitTime, m.IsWorkingDay,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule for %s: %w", m.Weekday, err)
	}
	return nil
}

// FindScheduleByWeekday retrieves the schedule row for one weekday name.
func (r *PgxScheduleRepository) FindScheduleByWeekday(ctx context.Context, weekday string) (*domain.WorkSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM work_schedules WHERE weekday = $1;`
	m, err := scanSchedule(r.Pool.QueryRow(ctx, query, weekday))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find schedule for %s: %w", weekday, err)
	}
	d := mapping.ToDomainWorkSchedule(m)
	return &d, nil
}

// ListSchedules retrieves all configured weekday schedules.
func (r *PgxScheduleRepository) ListSchedules(ctx context.Context) ([]domain.WorkSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM work_schedules;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WorkSchedule, error) {
		return scanSchedule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan schedules: %w", err)
	}
	return mapping.ToDomainWorkScheduleSlice(ms), nil
}
