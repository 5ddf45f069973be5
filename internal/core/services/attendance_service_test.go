package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/core/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockGeofenceSvc is a mock type for the GeofenceSvc interface
type MockGeofenceSvc struct {
	mock.Mock
}

func (m *MockGeofenceSvc) Match(ctx context.Context, coord domain.Coordinate, asOf time.Time) (*domain.GeofenceMatch, error) {
	args := m.Called(ctx, coord, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeofenceMatch), args.Error(1)
}

// MockScheduleRepository is a mock type for the ScheduleReader interface
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindScheduleByWeekday(ctx context.Context, weekday string) (*domain.WorkSchedule, error) {
	args := m.Called(ctx, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkSchedule), args.Error(1)
}

func (m *MockScheduleRepository) ListSchedules(ctx context.Context) ([]domain.WorkSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkSchedule), args.Error(1)
}

// MockAttendanceRepository is a mock type for the AttendanceRepositoryFacade interface
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindRecordByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListRecentRecords(ctx context.Context, userID string, limit int) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) SaveCheckIn(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) UpdateCheckOut(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockGeofence   *MockGeofenceSvc
	mockSchedules  *MockScheduleRepository
	mockAttendance *MockAttendanceRepository
	service        portssvc.AttendanceSvcFacade

	userID string
	coord  domain.Coordinate
	match  *domain.GeofenceMatch
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockGeofence = new(MockGeofenceSvc)
	suite.mockSchedules = new(MockScheduleRepository)
	suite.mockAttendance = new(MockAttendanceRepository)
	suite.service = services.NewAttendanceService(suite.mockGeofence, suite.mockSchedules, suite.mockAttendance)

	suite.userID = uuid.NewString()
	suite.coord = domain.Coordinate{Latitude: -6.2, Longitude: 106.8166666}
	suite.match = &domain.GeofenceMatch{
		LocationID:     uuid.NewString(),
		LocationName:   "Kantor Pusat",
		DistanceMeters: 42.5,
	}
}

// mondayAt returns a fixed Monday (Senin) at the given clock time.
func mondayAt(hour, minute, second int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, second, 0, time.UTC)
}

func (suite *AttendanceServiceTestSuite) checkInRequest() dto.RecordAttendanceRequest {
	return dto.RecordAttendanceRequest{
		UserID:        suite.userID,
		JenisPresensi: string(domain.DirectionCheckIn),
		Latitude:      &suite.coord.Latitude,
		Longitude:     &suite.coord.Longitude,
	}
}

func (suite *AttendanceServiceTestSuite) checkOutRequest() dto.RecordAttendanceRequest {
	req := suite.checkInRequest()
	req.JenisPresensi = string(domain.DirectionCheckOut)
	return req
}

func mondaySchedule() *domain.WorkSchedule {
	return &domain.WorkSchedule{
		Weekday:      "Senin",
		EntryTime:    "08:00:00",
		LateCutoff:   "08:30:00",
		ExitTime:     "17:00:00",
		IsWorkingDay: true,
	}
}

// --- Check-in ---

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_OnTime() {
	ctx := context.Background()
	at := mondayAt(8, 29, 59)
	date := domain.DateOf(at)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, date).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(mondaySchedule(), nil).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, match, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.AttendanceID)
	suite.Equal(suite.userID, record.UserID)
	suite.Equal(date, record.Date)
	suite.Equal(at, record.CheckInAt)
	suite.Equal(domain.StatusOnTime, record.Status)
	suite.Equal("Kantor Pusat", record.CheckInLocation)
	suite.Nil(record.CheckOutAt)
	suite.Equal(suite.match, match)
	suite.mockGeofence.AssertExpectations(suite.T())
	suite.mockSchedules.AssertExpectations(suite.T())
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_LateAfterCutoff() {
	ctx := context.Background()
	at := mondayAt(8, 30, 1)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(mondaySchedule(), nil).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(domain.StatusLate, record.Status)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_ExactlyAtCutoffIsOnTime() {
	ctx := context.Background()
	at := mondayAt(8, 30, 0)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(mondaySchedule(), nil).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOnTime, record.Status)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_MissingScheduleDefaultsOnTime() {
	ctx := context.Background()
	at := mondayAt(11, 0, 0)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOnTime, record.Status)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_NonWorkingDayDefaultsOnTime() {
	ctx := context.Background()
	at := mondayAt(11, 0, 0)
	schedule := mondaySchedule()
	schedule.IsWorkingDay = false

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(schedule, nil).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOnTime, record.Status)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_AlreadyCheckedIn() {
	ctx := context.Background()
	at := mondayAt(9, 0, 0)
	existing := &domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		UserID:       suite.userID,
		Date:         domain.DateOf(at),
		CheckInAt:    mondayAt(8, 0, 0),
	}

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedIn)
	suite.mockAttendance.AssertNotCalled(suite.T(), "SaveCheckIn", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckIn_DuplicateInsertMapsToAlreadyCheckedIn() {
	ctx := context.Background()
	at := mondayAt(8, 0, 0)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSchedules.On("FindScheduleByWeekday", ctx, "Senin").
		Return(mondaySchedule(), nil).Once()
	suite.mockAttendance.On("SaveCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(apperrors.ErrDuplicate).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedIn)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_OutsideAuthorizedArea_NoWrites() {
	ctx := context.Background()
	at := mondayAt(8, 0, 0)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).
		Return(nil, apperrors.ErrOutsideAuthorizedArea).Once()

	record, match, err := suite.service.RecordAttendance(ctx, suite.checkInRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.Nil(match)
	suite.ErrorIs(err, apperrors.ErrOutsideAuthorizedArea)
	suite.mockAttendance.AssertNotCalled(suite.T(), "FindRecordByUserAndDate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAttendance.AssertNotCalled(suite.T(), "SaveCheckIn", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_UnknownDirection() {
	ctx := context.Background()
	req := suite.checkInRequest()
	req.JenisPresensi = "istirahat"

	record, _, err := suite.service.RecordAttendance(ctx, req, mondayAt(8, 0, 0))

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGeofence.AssertNotCalled(suite.T(), "Match", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_MissingCoordinates() {
	ctx := context.Background()
	req := suite.checkInRequest()
	req.Longitude = nil

	record, _, err := suite.service.RecordAttendance(ctx, req, mondayAt(8, 0, 0))

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidCoordinate)
}

// --- Check-out ---

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_Success() {
	ctx := context.Background()
	at := mondayAt(17, 5, 0)
	existing := &domain.AttendanceRecord{
		AttendanceID:    uuid.NewString(),
		UserID:          suite.userID,
		Date:            domain.DateOf(at),
		CheckInAt:       mondayAt(8, 15, 0),
		CheckInLocation: "Kantor Pusat",
		Status:          domain.StatusOnTime,
	}

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()
	suite.mockAttendance.On("UpdateCheckOut", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Require().NotNil(record.CheckOutAt)
	suite.Equal(at, *record.CheckOutAt)
	suite.Require().NotNil(record.CheckOutLocation)
	suite.Equal("Kantor Pusat", *record.CheckOutLocation)
	suite.Equal(existing.AttendanceID, record.AttendanceID)
	suite.True(record.CheckedOut())
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_WithoutCheckIn() {
	ctx := context.Background()
	at := mondayAt(17, 0, 0)

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(nil, apperrors.ErrNotFound).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNoCheckInFound)
	suite.mockAttendance.AssertNotCalled(suite.T(), "UpdateCheckOut", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_SecondCheckOutRejected() {
	ctx := context.Background()
	at := mondayAt(18, 0, 0)
	firstOut := mondayAt(17, 0, 0)
	outLoc := "Kantor Pusat"
	existing := &domain.AttendanceRecord{
		AttendanceID:     uuid.NewString(),
		UserID:           suite.userID,
		Date:             domain.DateOf(at),
		CheckInAt:        mondayAt(8, 0, 0),
		CheckOutAt:       &firstOut,
		CheckOutLocation: &outLoc,
	}

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedOut)
	suite.mockAttendance.AssertNotCalled(suite.T(), "UpdateCheckOut", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_BeforeCheckInRejected() {
	ctx := context.Background()
	at := mondayAt(7, 0, 0)
	existing := &domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		UserID:       suite.userID,
		Date:         domain.DateOf(at),
		CheckInAt:    mondayAt(8, 0, 0),
	}

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_DuplicateUpdateMapsToAlreadyCheckedOut() {
	ctx := context.Background()
	at := mondayAt(17, 0, 0)
	existing := &domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		UserID:       suite.userID,
		Date:         domain.DateOf(at),
		CheckInAt:    mondayAt(8, 0, 0),
	}

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()
	// A concurrent check-out filled checkout_at between the read and the
	// update, so the guarded UPDATE touches zero rows.
	suite.mockAttendance.On("UpdateCheckOut", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(apperrors.ErrDuplicate).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedOut)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_CheckOut_RepositoryError() {
	ctx := context.Background()
	at := mondayAt(17, 0, 0)
	existing := &domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		UserID:       suite.userID,
		Date:         domain.DateOf(at),
		CheckInAt:    mondayAt(8, 0, 0),
	}
	expectedErr := assert.AnError

	suite.mockGeofence.On("Match", ctx, suite.coord, at).Return(suite.match, nil).Once()
	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, domain.DateOf(at)).
		Return(existing, nil).Once()
	suite.mockAttendance.On("UpdateCheckOut", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(expectedErr).Once()

	record, _, err := suite.service.RecordAttendance(ctx, suite.checkOutRequest(), at)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, expectedErr)
}

// --- Daily record ---

func (suite *AttendanceServiceTestSuite) TestGetDailyRecord_Success() {
	ctx := context.Background()
	date := mondayAt(0, 0, 0)
	today := &domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		UserID:       suite.userID,
		Date:         date,
		CheckInAt:    mondayAt(8, 0, 0),
	}
	history := []domain.AttendanceRecord{*today}

	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, date).
		Return(today, nil).Once()
	suite.mockAttendance.On("ListRecentRecords", ctx, suite.userID, 10).
		Return(history, nil).Once()

	record, recent, err := suite.service.GetDailyRecord(ctx, suite.userID, date, 10)

	suite.Require().NoError(err)
	suite.Equal(today, record)
	suite.Len(recent, 1)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestGetDailyRecord_NoRecordToday() {
	ctx := context.Background()
	date := mondayAt(0, 0, 0)

	suite.mockAttendance.On("FindRecordByUserAndDate", ctx, suite.userID, date).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendance.On("ListRecentRecords", ctx, suite.userID, 10).
		Return(nil, nil).Once()

	record, recent, err := suite.service.GetDailyRecord(ctx, suite.userID, date, 10)

	suite.Require().NoError(err)
	suite.Nil(record)
	suite.NotNil(recent)
	suite.Empty(recent)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
