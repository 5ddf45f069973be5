package models

// WorkSchedule mirrors the work_schedules table, keyed by weekday name.
type WorkSchedule struct {
	Weekday      string `json:"weekday"`
	EntryTime    string `json:"entryTime"`
	LateCutoff   string `json:"lateCutoff"`
	ExitTime     string `json:"exitTime"`
	IsWorkingDay bool   `json:"isWorkingDay"`
	AuditFields
}
