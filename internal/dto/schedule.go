package dto

import "github.com/presensi-app/presensi-backend/internal/core/domain"

// UpsertScheduleRequest defines the jam-kerja row for one weekday.
// Clock fields use "HH:MM:SS".
type UpsertScheduleRequest struct {
	JamMasuk       string `json:"jam_masuk" binding:"required"`
	BatasTerlambat string `json:"batas_terlambat" binding:"required"`
	JamKeluar      string `json:"jam_keluar" binding:"required"`
	HariKerja      *bool  `json:"hari_kerja" binding:"required"`
}

// WorkScheduleResponse defines the data returned for a weekday schedule.
type WorkScheduleResponse struct {
	Hari           string `json:"hari"`
	JamMasuk       string `json:"jam_masuk"`
	BatasTerlambat string `json:"batas_terlambat"`
	JamKeluar      string `json:"jam_keluar"`
	HariKerja      bool   `json:"hari_kerja"`
}

// ToWorkScheduleResponse converts a domain WorkSchedule to its response form.
func ToWorkScheduleResponse(s *domain.WorkSchedule) WorkScheduleResponse {
	return WorkScheduleResponse{
		Hari:           s.Weekday,
		JamMasuk:       s.EntryTime,
		BatasTerlambat: s.LateCutoff,
		JamKeluar:      s.ExitTime,
		HariKerja:      s.IsWorkingDay,
	}
}

// ToListWorkScheduleResponse converts a slice of domain WorkSchedules.
func ToListWorkScheduleResponse(schedules []domain.WorkSchedule) []WorkScheduleResponse {
	res := make([]WorkScheduleResponse, len(schedules))
	for i := range schedules {
		res[i] = ToWorkScheduleResponse(&schedules[i])
	}
	return res
}
