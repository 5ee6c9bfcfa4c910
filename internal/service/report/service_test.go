package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
)

// Fakes embed the interface so unimplemented methods panic loudly if a test
// ever reaches them.

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch
}

func (f *fakePunchRepo) ListByDeviceRange(_ context.Context, deviceID int64, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.DeviceID == deviceID && !p.RecordedAt.Before(from) && !p.RecordedAt.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByUIDRange(_ context.Context, uid employee.CheckerUID, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.UID == uid && !p.RecordedAt.Before(from) && !p.RecordedAt.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListActiveWithChecker(context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Status == employee.StatusActive && e.HasChecker() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeDeviceRepo struct {
	device.DeviceRepository
	devices []device.Device
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id int64) (device.Device, error) {
	for _, d := range f.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return device.Device{}, device.ErrDeviceNotFound
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListAll(context.Context) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

type fakePermissionRepo struct {
	permission.PermissionRepository
	permissions []permission.Permission
}

func (f *fakePermissionRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]permission.Permission, error) {
	var out []permission.Permission
	for _, p := range f.permissions {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(punches []punch.Punch, employees []employee.Employee, holidays []holiday.Holiday, permissions []permission.Permission) report.ReportService {
	return NewReportService(
		&fakePunchRepo{punches: punches},
		&fakeEmployeeRepo{employees: employees},
		&fakeDeviceRepo{devices: []device.Device{{ID: 1, IP: "10.0.0.5", SerialNumber: "ZK-001"}}},
		&fakeHolidayRepo{holidays: holidays},
		&fakePermissionRepo{permissions: permissions},
	)
}

func TestGenerateDeviceReportRangeCompleteness(t *testing.T) {
	// One punch in a 30-day June: every day still appears.
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 12, 8, 0),
	}
	svc := newTestService(punches, nil, nil, nil)

	rep, err := svc.GenerateDeviceReport(context.Background(), report.DeviceReportRequest{
		DeviceID:  1,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, rep.Period.TotalDays)
	assert.Equal(t, 1, rep.TotalUsers)
	assert.Equal(t, 1, rep.TotalRecords)
	require.Len(t, rep.Attendance, 1)
	assert.Len(t, rep.Attendance[0].Days, 30)

	assert.Equal(t, "2024-06-01", rep.Attendance[0].Days[0].Date)
	assert.Equal(t, "2024-06-30", rep.Attendance[0].Days[29].Date)
}

func TestGenerateDeviceReportDeterministic(t *testing.T) {
	punches := []punch.Punch{
		punchAt(1, "7", 2024, time.June, 3, 9, 0),
		punchAt(1, "42", 2024, time.June, 3, 8, 2),
		punchAt(1, "42", 2024, time.June, 3, 17, 15),
		punchAt(1, "13", 2024, time.June, 4, 8, 30),
	}
	svc := newTestService(punches, nil, nil, nil)

	req := report.DeviceReportRequest{DeviceID: 1, StartDate: "2024-06-03", EndDate: "2024-06-07"}

	first, err := svc.GenerateDeviceReport(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.GenerateDeviceReport(context.Background(), req)
	require.NoError(t, err)

	// generated_at is the only field allowed to differ between runs.
	first.GeneratedAt = time.Time{}
	second.GeneratedAt = time.Time{}

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	// uids come out in sorted order.
	require.Len(t, first.Attendance, 3)
	assert.Equal(t, "13", first.Attendance[0].UID)
	assert.Equal(t, "42", first.Attendance[1].UID)
	assert.Equal(t, "7", first.Attendance[2].UID)
}

func TestGenerateDeviceReportStatistics(t *testing.T) {
	// Work week 2024-06-03..09: attendance Mon, entry-only Tue, absent
	// Wed-Fri, weekend Sat-Sun.
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 2),
		punchAt(1, "42", 2024, time.June, 3, 17, 15),
		punchAt(1, "42", 2024, time.June, 4, 8, 0),
	}
	svc := newTestService(punches, nil, nil, nil)

	rep, err := svc.GenerateDeviceReport(context.Background(), report.DeviceReportRequest{
		DeviceID:  1,
		StartDate: "2024-06-03",
		EndDate:   "2024-06-09",
	})
	require.NoError(t, err)

	require.Len(t, rep.Attendance, 1)
	stats := rep.Attendance[0].Statistics
	assert.Equal(t, 7, stats.TotalDays)
	assert.Equal(t, 1, stats.CompleteDays)
	assert.Equal(t, 1, stats.EntryOnlyDays)
	assert.Equal(t, 3, stats.AbsenceDays)
	assert.Equal(t, 2, stats.WeekendDays)
	assert.Equal(t, 5, stats.WorkingDays)
	assert.InDelta(t, 40.0, stats.AttendanceRate, 0.001)
}

func TestGenerateDeviceReportUnknownDevice(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	_, err := svc.GenerateDeviceReport(context.Background(), report.DeviceReportRequest{
		DeviceID:  99,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-02",
	})
	assert.ErrorIs(t, err, device.ErrDeviceNotFound)
}

func TestGetMonthlyAttendance(t *testing.T) {
	fullname := "Ana Torres"
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42", Fullname: &fullname},
	}
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 0),
		punchAt(1, "42", 2024, time.June, 3, 17, 0),
	}
	svc := newTestService(punches, employees, nil, nil)

	res, err := svc.GetMonthlyAttendance(context.Background(), report.MonthlyAttendanceRequest{
		EmployeeID: 7,
		Year:       2024,
		Month:      6,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Torres", res.Name)
	assert.Len(t, res.Days, 30)
	assert.Equal(t, 1, res.Statistics.CompleteDays)
}

func TestGetMonthlyAttendanceNoChecker(t *testing.T) {
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive},
	}
	svc := newTestService(nil, employees, nil, nil)

	_, err := svc.GetMonthlyAttendance(context.Background(), report.MonthlyAttendanceRequest{
		EmployeeID: 7,
		Year:       2024,
		Month:      6,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNoChecker)
}

func TestGetDailySummary(t *testing.T) {
	name := "Ana"
	last := "Torres"
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42", Name: &name, Lastname: &last},
		{ID: 8, Status: employee.StatusActive, CheckerUID: "43", Name: &name},
	}
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 0),
		punchAt(1, "42", 2024, time.June, 3, 17, 0),
	}
	svc := newTestService(punches, employees, nil, nil)

	sum, err := svc.GetDailySummary(context.Background(), "2024-06-03")
	require.NoError(t, err)

	require.Len(t, sum.Rows, 2)
	assert.Equal(t, "Ana Torres", sum.Rows[0].Name)
	assert.Equal(t, report.StatusAttendance, sum.Rows[0].Status)
	assert.Equal(t, report.StatusAbsence, sum.Rows[1].Status)
	assert.Equal(t, 1, sum.Present)
	assert.Equal(t, 1, sum.Absent)
}

func TestGetAttendanceStatsLateArrivals(t *testing.T) {
	entry := "08:00"
	exit := "17:00"
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42", EntryTime: &entry, ExitTime: &exit},
	}
	punches := []punch.Punch{
		// 08:05 is within the 10-minute tolerance.
		punchAt(1, "42", 2024, time.June, 3, 8, 5),
		punchAt(1, "42", 2024, time.June, 3, 17, 30),
		// 08:25 is late; 16:30 is an early leave.
		punchAt(1, "42", 2024, time.June, 4, 8, 25),
		punchAt(1, "42", 2024, time.June, 4, 16, 30),
	}
	svc := newTestService(punches, employees, nil, nil)

	stats, err := svc.GetAttendanceStats(context.Background(), 7, "2024-06-03", "2024-06-04")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CompleteDays)
	assert.Equal(t, 1, stats.LateArrivals)
	assert.Equal(t, 1, stats.EarlyLeaves)
}

func TestExportDailySummaryCSV(t *testing.T) {
	name := "Ana"
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42", Name: &name},
	}
	punches := []punch.Punch{
		punchAt(1, "42", 2024, time.June, 3, 8, 0),
		punchAt(1, "42", 2024, time.June, 3, 17, 0),
	}
	svc := newTestService(punches, employees, nil, nil)

	out, err := svc.ExportDailySummaryCSV(context.Background(), "2024-06-03")
	require.NoError(t, err)

	csv := string(out)
	assert.Contains(t, csv, "date,employee,uid,entry,exit,status,reason,working_hours")
	assert.Contains(t, csv, "2024-06-03,Ana,42,08:00:00,17:00:00,Attendance,,9.00")
}
