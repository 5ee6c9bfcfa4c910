package report

import (
	"math"
	"sort"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/service/calendar"
)

// ReconcileDay derives the single attendance record for one uid on one day.
// Pure and deterministic: same punches and calendar verdict always produce
// the same record.
//
// Holiday is applied last and wins even when the employee actually punched
// that day. That mirrors how the business reads holiday reports today; it is
// a documented policy choice, not an accident.
func ReconcileDay(date time.Time, uid employee.CheckerUID, punches []punch.Punch, exc calendar.Exception) report.DayRecord {
	rec := report.DayRecord{
		Date:   date,
		UID:    uid,
		Status: report.StatusAbsence,
	}

	if exc.Kind == calendar.KindWeekend {
		rec.Status = report.StatusWeekend
		reason := exc.Reason
		rec.StatusReason = &reason
	}

	// The store may hand punches back unordered; sort is stable and exact
	// duplicate timestamps are excluded upstream by the uniqueness
	// constraint.
	sorted := make([]punch.Punch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	for i := range sorted {
		ts := sorted[i].RecordedAt
		if rec.FirstCheck == nil {
			first := ts
			rec.FirstCheck = &first
			rec.Status = report.StatusEntryOnly
			rec.StatusReason = nil
			continue
		}
		if rec.LastCheck == nil || ts.After(*rec.LastCheck) {
			last := ts
			rec.LastCheck = &last
		}
		if rec.LastCheck != nil && rec.LastCheck.After(*rec.FirstCheck) {
			rec.Status = report.StatusAttendance
			rec.StatusReason = nil
			rec.WorkingHours = roundHours(rec.LastCheck.Sub(*rec.FirstCheck))
		}
	}

	switch exc.Kind {
	case calendar.KindHoliday:
		rec.Status = report.StatusHoliday
		reason := exc.Reason
		rec.StatusReason = &reason
	case calendar.KindPermission:
		rec.Status = report.StatusPermission
		reason := exc.Reason
		rec.StatusReason = &reason
	}

	return rec
}

func roundHours(d time.Duration) float64 {
	hours := d.Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// computeStatistics rolls one uid's day records up into period statistics.
// Working days exclude weekends, holidays and permissions; the attendance
// rate counts complete and entry-only days against them, defaulting to 100
// when the period has no working days at all.
func computeStatistics(days []report.DayRecord) report.Statistics {
	stats := report.Statistics{TotalDays: len(days)}

	for _, d := range days {
		switch d.Status {
		case report.StatusAttendance:
			stats.CompleteDays++
		case report.StatusEntryOnly:
			stats.EntryOnlyDays++
		case report.StatusAbsence:
			stats.AbsenceDays++
		case report.StatusWeekend:
			stats.WeekendDays++
		case report.StatusHoliday:
			stats.HolidayDays++
		case report.StatusPermission:
			stats.PermissionDays++
		}
		stats.TotalHours += d.WorkingHours
	}
	stats.TotalHours = math.Round(stats.TotalHours*100) / 100

	stats.WorkingDays = stats.TotalDays - stats.WeekendDays - stats.HolidayDays - stats.PermissionDays

	if stats.WorkingDays > 0 {
		rate := float64(stats.CompleteDays+stats.EntryOnlyDays) / float64(stats.WorkingDays) * 100
		stats.AttendanceRate = math.Round(rate*100) / 100
	} else {
		stats.AttendanceRate = 100
	}

	return stats
}

// enumerateDates returns every civil date in [start, end] inclusive. Days
// with zero punches must still appear in a report, so the range is walked
// explicitly rather than derived from the punch set.
func enumerateDates(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
