package services

import (
	portsrepo "github.com/presensi-app/presensi-backend/internal/core/ports/repositories"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
)

// NewServiceContainer wires all services against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Geofence = NewGeofenceService(repos.LocationRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.Schedule = NewScheduleService(repos.ScheduleRepo)

	// The recorder depends on the geofence service and reads the schedule
	// table directly for status derivation.
	container.Attendance = NewAttendanceService(container.Geofence, repos.ScheduleRepo, repos.AttendanceRepo)

	userSvc := NewUserService(repos.UserRepo)
	container.User = userSvc
	container.Auth = userSvc

	return container
}
