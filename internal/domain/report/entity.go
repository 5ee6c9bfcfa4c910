package report

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

// Status is the single attendance status derived per (uid, day). Priority
// order, highest first: Holiday > Permission > Attendance > EntryOnly >
// Weekend > Absence. Exactly one status holds for any day.
type Status string

const (
	StatusAbsence    Status = "Absence"
	StatusWeekend    Status = "Weekend"
	StatusEntryOnly  Status = "EntryOnly"
	StatusAttendance Status = "Attendance"
	StatusPermission Status = "Permission"
	StatusHoliday    Status = "Holiday"
)

// DayRecord is the reconciled attendance of one uid on one day. It is
// derived fresh on every report request and never persisted.
type DayRecord struct {
	Date         time.Time
	UID          employee.CheckerUID
	FirstCheck   *time.Time
	LastCheck    *time.Time
	Status       Status
	StatusReason *string
	WorkingHours float64
}

// Statistics is the per-uid rollup over one report period.
type Statistics struct {
	TotalDays      int     `json:"total_days"`
	CompleteDays   int     `json:"complete_days"`
	EntryOnlyDays  int     `json:"entry_only_days"`
	AbsenceDays    int     `json:"absence_days"`
	WeekendDays    int     `json:"weekend_days"`
	HolidayDays    int     `json:"holiday_days"`
	PermissionDays int     `json:"permission_days"`
	WorkingDays    int     `json:"working_days"`
	TotalHours     float64 `json:"total_hours"`
	AttendanceRate float64 `json:"attendance_rate"`
}
