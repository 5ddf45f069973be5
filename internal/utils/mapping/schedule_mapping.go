package mapping

import (
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/models"
)

// ToModelWorkSchedule converts a domain WorkSchedule to a model WorkSchedule.
func ToModelWorkSchedule(d domain.WorkSchedule) models.WorkSchedule {
	return models.WorkSchedule{
		Weekday:      d.Weekday,
		EntryTime:    d.EntryTime,
		LateCutoff:   d.LateCutoff,
		ExitTime:     d.ExitTime,
		IsWorkingDay: d.IsWorkingDay,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkSchedule converts a model WorkSchedule to a domain WorkSchedule.
func ToDomainWorkSchedule(m models.WorkSchedule) domain.WorkSchedule {
	return domain.WorkSchedule{
		Weekday:      m.Weekday,
		EntryTime:    m.EntryTime,
		LateCutoff:   m.LateCutoff,
		ExitTime:     m.ExitTime,
		IsWorkingDay: m.IsWorkingDay,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkScheduleSlice converts model schedules to domain schedules.
func ToDomainWorkScheduleSlice(ms []models.WorkSchedule) []domain.WorkSchedule {
	ds := make([]domain.WorkSchedule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkSchedule(m)
	}
	return ds
}
