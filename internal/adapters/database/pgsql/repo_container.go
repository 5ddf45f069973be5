package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LocationRepo:   NewLocationRepository(pool),
		ScheduleRepo:   NewScheduleRepository(pool),
		AttendanceRepo: NewAttendanceRepository(pool),
		UserRepo:       NewUserRepository(pool),
	}
}
