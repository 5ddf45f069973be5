package mapping

import (
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/models"
)

// ToModelAttendanceRecord converts a domain AttendanceRecord to its model form,
// flattening the coordinates into lat/lon columns.
func ToModelAttendanceRecord(d domain.AttendanceRecord) models.AttendanceRecord {
	m := models.AttendanceRecord{
		AttendanceID:    d.AttendanceID,
		UserID:          d.UserID,
		Date:            d.Date,
		CheckInAt:       d.CheckInAt,
		CheckInLat:      d.CheckInCoord.Latitude,
		CheckInLon:      d.CheckInCoord.Longitude,
		CheckInLocation: d.CheckInLocation,
		Status:          string(d.Status),
		Note:            d.Note,
		Photo:           d.Photo,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.CheckOutAt != nil {
		m.CheckOutAt = d.CheckOutAt
		m.CheckOutLat = &d.CheckOutCoord.Latitude
		m.CheckOutLon = &d.CheckOutCoord.Longitude
		m.CheckOutLocation = d.CheckOutLocation
	}
	return m
}

// ToDomainAttendanceRecord converts a model AttendanceRecord to its domain form.
func ToDomainAttendanceRecord(m models.AttendanceRecord) domain.AttendanceRecord {
	d := domain.AttendanceRecord{
		AttendanceID:    m.AttendanceID,
		UserID:          m.UserID,
		Date:            m.Date,
		CheckInAt:       m.CheckInAt,
		CheckInCoord:    domain.Coordinate{Latitude: m.CheckInLat, Longitude: m.CheckInLon},
		CheckInLocation: m.CheckInLocation,
		Status:          domain.AttendanceStatus(m.Status),
		Note:            m.Note,
		Photo:           m.Photo,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.CheckOutAt != nil && m.CheckOutLat != nil && m.CheckOutLon != nil {
		d.CheckOutAt = m.CheckOutAt
		d.CheckOutCoord = &domain.Coordinate{Latitude: *m.CheckOutLat, Longitude: *m.CheckOutLon}
		d.CheckOutLocation = m.CheckOutLocation
	}
	return d
}

// ToDomainAttendanceRecordSlice converts model records to domain records.
func ToDomainAttendanceRecordSlice(ms []models.AttendanceRecord) []domain.AttendanceRecord {
	ds := make([]domain.AttendanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendanceRecord(m)
	}
	return ds
}
