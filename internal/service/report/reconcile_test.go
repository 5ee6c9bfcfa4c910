package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/service/calendar"
)

func punchAt(deviceID int64, uid string, y int, m time.Month, d, hh, mm int) punch.Punch {
	return punch.Punch{
		DeviceID:   deviceID,
		UID:        employee.CheckerUID(uid),
		RecordedAt: time.Date(y, m, d, hh, mm, 0, 0, time.UTC),
	}
}

func TestReconcileDayFullAttendance(t *testing.T) {
	// Monday 2024-06-03, punches at 08:02 and 17:15.
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 2),
		punchAt(1, "42", 2024, time.June, 3, 17, 15),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindNone})

	assert.Equal(t, report.StatusAttendance, rec.Status)
	require.NotNil(t, rec.FirstCheck)
	require.NotNil(t, rec.LastCheck)
	assert.Equal(t, "08:02:00", rec.FirstCheck.Format(time.TimeOnly))
	assert.Equal(t, "17:15:00", rec.LastCheck.Format(time.TimeOnly))
	assert.InDelta(t, 9.22, rec.WorkingHours, 0.001)
	assert.Nil(t, rec.StatusReason)
}

func TestReconcileDayUnorderedPunches(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 17, 15),
		punchAt(1, "42", 2024, time.June, 3, 12, 30),
		punchAt(1, "42", 2024, time.June, 3, 8, 2),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindNone})

	assert.Equal(t, report.StatusAttendance, rec.Status)
	assert.Equal(t, "08:02:00", rec.FirstCheck.Format(time.TimeOnly))
	assert.Equal(t, "17:15:00", rec.LastCheck.Format(time.TimeOnly))
	assert.InDelta(t, 9.22, rec.WorkingHours, 0.001)
}

func TestReconcileDaySinglePunch(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 2),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindNone})

	assert.Equal(t, report.StatusEntryOnly, rec.Status)
	require.NotNil(t, rec.FirstCheck)
	assert.Nil(t, rec.LastCheck)
	assert.Zero(t, rec.WorkingHours)
}

func TestReconcileDayNoPunches(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	rec := ReconcileDay(day, "42", nil, calendar.Exception{Kind: calendar.KindNone})

	assert.Equal(t, report.StatusAbsence, rec.Status)
	assert.Nil(t, rec.FirstCheck)
	assert.Nil(t, rec.LastCheck)
	assert.Nil(t, rec.StatusReason)
	assert.Zero(t, rec.WorkingHours)
}

func TestReconcileDayWeekend(t *testing.T) {
	// Saturday 2024-06-08, zero punches.
	day := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)

	rec := ReconcileDay(day, "42", nil, calendar.Exception{Kind: calendar.KindWeekend, Reason: "Sábado"})

	assert.Equal(t, report.StatusWeekend, rec.Status)
	require.NotNil(t, rec.StatusReason)
	assert.Equal(t, "Sábado", *rec.StatusReason)
}

func TestReconcileDayWeekendWithPunches(t *testing.T) {
	// Weekend is only the default; actual punches advance the status.
	day := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 8, 9, 0),
		punchAt(1, "42", 2024, time.June, 8, 14, 0),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindWeekend, Reason: "Sábado"})

	assert.Equal(t, report.StatusAttendance, rec.Status)
	assert.Nil(t, rec.StatusReason)
	assert.InDelta(t, 5.0, rec.WorkingHours, 0.001)
}

func TestReconcileDayHolidayBeatsPunches(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 10, 8, 0),
		punchAt(1, "42", 2024, time.June, 10, 17, 0),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindHoliday, Reason: "Feriado"})

	assert.Equal(t, report.StatusHoliday, rec.Status)
	require.NotNil(t, rec.StatusReason)
	assert.Equal(t, "Feriado", *rec.StatusReason)
	// First/last checks are still reported even though the status is
	// Holiday.
	assert.NotNil(t, rec.FirstCheck)
	assert.NotNil(t, rec.LastCheck)
}

func TestReconcileDayPermissionBeatsEntryOnly(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 10, 8, 0),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindPermission, Reason: "Cita médica"})

	assert.Equal(t, report.StatusPermission, rec.Status)
	require.NotNil(t, rec.StatusReason)
	assert.Equal(t, "Cita médica", *rec.StatusReason)
}

func TestReconcileDayEqualTimestampsAcrossDevices(t *testing.T) {
	// Same instant on two devices: last never exceeds first, so status
	// stays entry-only and hours stay zero.
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 0),
		punchAt(2, "42", 2024, time.June, 3, 8, 0),
	}

	rec := ReconcileDay(day, "42", punches, calendar.Exception{Kind: calendar.KindNone})

	assert.Equal(t, report.StatusEntryOnly, rec.Status)
	assert.Zero(t, rec.WorkingHours)
}

func TestWorkingHoursNeverNegative(t *testing.T) {
	assert.Zero(t, roundHours(-time.Hour))
	assert.Zero(t, roundHours(0))
	assert.InDelta(t, 0.5, roundHours(30*time.Minute), 0.001)
}

func TestComputeStatistics(t *testing.T) {
	mk := func(status report.Status, hours float64) report.DayRecord {
		return report.DayRecord{Status: status, WorkingHours: hours}
	}
	days := []report.DayRecord{
		mk(report.StatusAttendance, 8.5),
		mk(report.StatusAttendance, 9.0),
		mk(report.StatusEntryOnly, 0),
		mk(report.StatusAbsence, 0),
		mk(report.StatusWeekend, 0),
		mk(report.StatusWeekend, 0),
		mk(report.StatusHoliday, 0),
		mk(report.StatusPermission, 0),
	}

	stats := computeStatistics(days)

	assert.Equal(t, 8, stats.TotalDays)
	assert.Equal(t, 2, stats.CompleteDays)
	assert.Equal(t, 1, stats.EntryOnlyDays)
	assert.Equal(t, 1, stats.AbsenceDays)
	assert.Equal(t, 2, stats.WeekendDays)
	assert.Equal(t, 1, stats.HolidayDays)
	assert.Equal(t, 1, stats.PermissionDays)
	// 8 - 2 weekends - 1 holiday - 1 permission = 4 working days.
	assert.Equal(t, 4, stats.WorkingDays)
	assert.InDelta(t, 17.5, stats.TotalHours, 0.001)
	// (2 complete + 1 entry-only) / 4 = 75%.
	assert.InDelta(t, 75.0, stats.AttendanceRate, 0.001)
}

func TestComputeStatisticsNoWorkingDays(t *testing.T) {
	days := []report.DayRecord{
		{Status: report.StatusWeekend},
		{Status: report.StatusWeekend},
	}

	stats := computeStatistics(days)

	assert.Equal(t, 0, stats.WorkingDays)
	assert.InDelta(t, 100.0, stats.AttendanceRate, 0.001)
}

func TestEnumerateDates(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	dates := enumerateDates(start, end)

	require.Len(t, dates, 30)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, end, dates[len(dates)-1])

	t.Run("single day range", func(t *testing.T) {
		dates := enumerateDates(start, start)
		require.Len(t, dates, 1)
	})
}
