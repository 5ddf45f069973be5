package domain

import "time"

// AttendanceDirection is the leg of a daily record being written.
type AttendanceDirection string

const (
	DirectionCheckIn  AttendanceDirection = "masuk"
	DirectionCheckOut AttendanceDirection = "keluar"
)

// Valid reports whether d is one of the two known directions.
func (d AttendanceDirection) Valid() bool {
	return d == DirectionCheckIn || d == DirectionCheckOut
}

// AttendanceStatus classifies a check-in against the weekday's late cutoff.
type AttendanceStatus string

const (
	StatusOnTime AttendanceStatus = "on-time"
	StatusLate   AttendanceStatus = "late"
)

// AttendanceRecord is the single row per (user, date). Check-out fields are
// nil until the user checks out; they are always set together.
type AttendanceRecord struct {
	AttendanceID string    `json:"attendanceID"`
	UserID       string    `json:"userID"`
	Date         time.Time `json:"date"` // calendar date, midnight in server zone

	CheckInAt       time.Time  `json:"checkInAt"`
	CheckInCoord    Coordinate `json:"checkInCoord"`
	CheckInLocation string     `json:"checkInLocation"`

	CheckOutAt       *time.Time  `json:"checkOutAt,omitempty"`
	CheckOutCoord    *Coordinate `json:"checkOutCoord,omitempty"`
	CheckOutLocation *string     `json:"checkOutLocation,omitempty"`

	Status AttendanceStatus `json:"status"`
	Note   string           `json:"note,omitempty"`
	Photo  string           `json:"photo,omitempty"`
	AuditFields
}

// CheckedOut reports whether the record's check-out leg is filled.
func (r AttendanceRecord) CheckedOut() bool {
	return r.CheckOutAt != nil
}

// DateOf truncates a timestamp to its calendar date, midnight in the
// timestamp's zone. Attendance records are keyed by this value.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
