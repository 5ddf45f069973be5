package models

import "time"

// AttendanceRecord mirrors the attendance_records table. One row per
// (user_id, attendance_date); check-out columns stay NULL until check-out.
type AttendanceRecord struct {
	AttendanceID string    `json:"attendanceID"`
	UserID       string    `json:"userID"`
	Date         time.Time `json:"date"`

	CheckInAt       time.Time `json:"checkInAt"`
	CheckInLat      float64   `json:"checkInLat"`
	CheckInLon      float64   `json:"checkInLon"`
	CheckInLocation string    `json:"checkInLocation"`

	CheckOutAt       *time.Time `json:"checkOutAt,omitempty"`
	CheckOutLat      *float64   `json:"checkOutLat,omitempty"`
	CheckOutLon      *float64   `json:"checkOutLon,omitempty"`
	CheckOutLocation *string    `json:"checkOutLocation,omitempty"`

	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
	Photo  string `json:"photo,omitempty"`
	AuditFields
}
