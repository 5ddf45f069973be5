package dto

import (
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
)

// RecordAttendanceRequest is the POST /presensi body sent by the mobile client.
// Field names keep the client's Indonesian wire vocabulary.
type RecordAttendanceRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	JenisPresensi string   `json:"jenis_presensi" binding:"required,oneof=masuk keluar"`
	Latitude      *float64 `json:"latitude" binding:"required"`
	Longitude     *float64 `json:"longitude" binding:"required"`
	Foto          string   `json:"foto"`
	Keterangan    string   `json:"keterangan"`
}

// RecordAttendanceData is the data payload returned on a successful presensi.
type RecordAttendanceData struct {
	Lokasi     string  `json:"lokasi"`
	JarakMeter float64 `json:"jarak_meter"`
	Status     string  `json:"status,omitempty"`
	Waktu      string  `json:"waktu"`
}

// AttendanceRecordResponse is one attendance row as returned to the client.
type AttendanceRecordResponse struct {
	AttendanceID string  `json:"attendance_id"`
	UserID       string  `json:"user_id"`
	Tanggal      string  `json:"tanggal"`
	JamMasuk     string  `json:"jam_masuk"`
	LokasiMasuk  string  `json:"lokasi_masuk"`
	JamKeluar    *string `json:"jam_keluar,omitempty"`
	LokasiKeluar *string `json:"lokasi_keluar,omitempty"`
	Status       string  `json:"status"`
	Keterangan   string  `json:"keterangan,omitempty"`
	Foto         string  `json:"foto,omitempty"`
}

// AttendanceDayResponse bundles the requested day's record (nil when absent)
// with the user's recent history.
type AttendanceDayResponse struct {
	Today   *AttendanceRecordResponse  `json:"today"`
	History []AttendanceRecordResponse `json:"history"`
}

// ToAttendanceRecordResponse converts a domain record to its response form.
func ToAttendanceRecordResponse(r *domain.AttendanceRecord) AttendanceRecordResponse {
	resp := AttendanceRecordResponse{
		AttendanceID: r.AttendanceID,
		UserID:       r.UserID,
		Tanggal:      r.Date.Format("2006-01-02"),
		JamMasuk:     r.CheckInAt.Format("15:04:05"),
		LokasiMasuk:  r.CheckInLocation,
		Status:       string(r.Status),
		Keterangan:   r.Note,
		Foto:         r.Photo,
	}
	if r.CheckOutAt != nil {
		out := r.CheckOutAt.Format("15:04:05")
		resp.JamKeluar = &out
		resp.LokasiKeluar = r.CheckOutLocation
	}
	return resp
}

// ToAttendanceHistoryResponse converts a slice of domain records.
func ToAttendanceHistoryResponse(records []domain.AttendanceRecord) []AttendanceRecordResponse {
	res := make([]AttendanceRecordResponse, len(records))
	for i := range records {
		res[i] = ToAttendanceRecordResponse(&records[i])
	}
	return res
}

// FormatWaktu renders a timestamp the way the client displays it.
func FormatWaktu(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
