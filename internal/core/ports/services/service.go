package services

// ServiceContainer bundles all service facades for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Attendance AttendanceSvcFacade
	Geofence   GeofenceSvc
	Location   LocationSvcFacade
	Schedule   ScheduleSvcFacade
	User       UserSvcFacade
	Auth       AuthenticatorSvc
}
