package domain

import (
	"fmt"
	"time"
)

// WorkSchedule is the configured work hours for one weekday. Times are
// stored as "HH:MM:SS" clock strings, matching the jam-kerja admin table.
type WorkSchedule struct {
	Weekday      string `json:"hari"` // Senin..Minggu
	EntryTime    string `json:"jamMasuk"`
	LateCutoff   string `json:"batasTerlambat"`
	ExitTime     string `json:"jamKeluar"`
	IsWorkingDay bool   `json:"hariKerja"`
	AuditFields
}

// weekdayNames maps time.Weekday to the Indonesian day names the schedule
// table is keyed by.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

// WeekdayName returns the Indonesian schedule key for the given instant.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// ValidWeekdayName reports whether s is one of the seven schedule keys.
func ValidWeekdayName(s string) bool {
	for _, name := range weekdayNames {
		if name == s {
			return true
		}
	}
	return false
}

// ParseClock parses a "HH:MM:SS" (or "HH:MM") clock string into a duration
// since midnight.
func ParseClock(s string) (time.Duration, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
		}
		sec = 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// ClockOf returns t's time-of-day as a duration since midnight.
func ClockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
