package repositories

// RepositoryProvider bundles all repository facades for dependency injection
// into the service container.
type RepositoryProvider struct {
	LocationRepo   LocationRepositoryFacade
	ScheduleRepo   ScheduleRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	UserRepo       UserRepositoryFacade
}
