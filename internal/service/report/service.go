package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/chronos-hr/attendance-backend-go/internal/service/calendar"
)

// lateTolerance is how far past the scheduled entry (or before the scheduled
// exit) a punch may fall before it counts as late arrival / early leave.
const lateTolerance = 10 * time.Minute

type ReportServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	device.DeviceRepository
	holiday.HolidayRepository
	permission.PermissionRepository
}

func NewReportService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	deviceRepo device.DeviceRepository,
	holidayRepo holiday.HolidayRepository,
	permissionRepo permission.PermissionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		PunchRepository:      punchRepo,
		EmployeeRepository:   employeeRepo,
		DeviceRepository:     deviceRepo,
		HolidayRepository:    holidayRepo,
		PermissionRepository: permissionRepo,
	}
}

// loadSnapshot pulls the full exception calendar for a period. One load per
// report; Resolve never touches the database afterwards.
func (s *ReportServiceImpl) loadSnapshot(ctx context.Context, from, to time.Time) (*calendar.Snapshot, error) {
	holidays, err := s.HolidayRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	permissions, err := s.PermissionRepository.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}

	employees, err := s.EmployeeRepository.ListActiveWithChecker(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	return calendar.NewSnapshot(holidays, permissions, employees), nil
}

// GenerateDeviceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateDeviceReport(ctx context.Context, req report.DeviceReportRequest) (report.DeviceReport, error) {
	if err := req.Validate(); err != nil {
		return report.DeviceReport{}, err
	}

	dev, err := s.DeviceRepository.GetByID(ctx, req.DeviceID)
	if err != nil {
		return report.DeviceReport{}, err
	}

	start, _ := time.ParseInLocation(time.DateOnly, req.StartDate, time.UTC)
	end, _ := time.ParseInLocation(time.DateOnly, req.EndDate, time.UTC)

	snap, err := s.loadSnapshot(ctx, start, end)
	if err != nil {
		return report.DeviceReport{}, err
	}

	punches, err := s.PunchRepository.ListByDeviceRange(ctx, req.DeviceID, start, endOfDay(end))
	if err != nil {
		return report.DeviceReport{}, fmt.Errorf("failed to load punches: %w", err)
	}

	byUID := groupByUIDAndDay(punches)

	// Sorted uids keep two runs over the same inputs byte-identical.
	uids := make([]string, 0, len(byUID))
	for uid := range byUID {
		uids = append(uids, uid.String())
	}
	sort.Strings(uids)

	dates := enumerateDates(start, end)

	result := report.DeviceReport{
		Device: report.DeviceInfo{
			ID:           dev.ID,
			IP:           dev.IP,
			SerialNumber: dev.SerialNumber,
			DeviceName:   dev.DeviceName,
		},
		Period: report.Period{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			TotalDays: len(dates),
		},
		GeneratedAt:  time.Now().UTC(),
		TotalUsers:   len(uids),
		TotalRecords: len(punches),
		Attendance:   []report.UserAttendance{},
	}

	for _, uidStr := range uids {
		uid := employee.CheckerUID(uidStr)
		perDay := byUID[uid]

		days := make([]report.DayRecord, 0, len(dates))
		for _, d := range dates {
			exc := snap.Resolve(d, uid)
			days = append(days, ReconcileDay(d, uid, perDay[keyOf(d)], exc))
		}

		ua := report.UserAttendance{
			UID:        uidStr,
			Days:       make([]report.DayRecordResponse, 0, len(days)),
			Statistics: computeStatistics(days),
		}
		for _, d := range days {
			ua.Days = append(ua.Days, report.ToDayResponse(d))
		}

		result.Attendance = append(result.Attendance, ua)
	}

	return result, nil
}

// GetDailySummary implements report.ReportService.
func (s *ReportServiceImpl) GetDailySummary(ctx context.Context, dateStr string) (report.DailySummary, error) {
	if _, ok := validator.IsValidDate(dateStr); !ok {
		return report.DailySummary{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	day, _ := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)

	snap, err := s.loadSnapshot(ctx, day, day)
	if err != nil {
		return report.DailySummary{}, err
	}

	employees, err := s.EmployeeRepository.ListActiveWithChecker(ctx)
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to load employees: %w", err)
	}

	summary := report.DailySummary{
		Date: dateStr,
		Rows: []report.DailySummaryRow{},
	}

	for _, emp := range employees {
		punches, err := s.PunchRepository.ListByUIDRange(ctx, emp.CheckerUID, day, endOfDay(day))
		if err != nil {
			return report.DailySummary{}, fmt.Errorf("failed to load punches for uid %s: %w", emp.CheckerUID, err)
		}

		exc := snap.Resolve(day, emp.CheckerUID)
		rec := ReconcileDay(day, emp.CheckerUID, punches, exc)

		row := report.DailySummaryRow{
			EmployeeID:   emp.ID,
			Name:         displayName(emp),
			CheckerUID:   emp.CheckerUID.String(),
			Status:       rec.Status,
			StatusReason: rec.StatusReason,
			WorkingHours: rec.WorkingHours,
		}
		if rec.FirstCheck != nil {
			v := rec.FirstCheck.Format(time.TimeOnly)
			row.Entry = &v
		}
		if rec.LastCheck != nil {
			v := rec.LastCheck.Format(time.TimeOnly)
			row.Exit = &v
		}

		switch rec.Status {
		case report.StatusAttendance, report.StatusEntryOnly:
			summary.Present++
		case report.StatusAbsence:
			summary.Absent++
		}

		summary.Rows = append(summary.Rows, row)
	}

	return summary, nil
}

// GetMonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) GetMonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceRequest) (report.MonthlyAttendance, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendance{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyAttendance{}, err
	}
	if !emp.HasChecker() {
		return report.MonthlyAttendance{}, employee.ErrEmployeeNoChecker
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	days, err := s.reconcileRange(ctx, emp, start, end)
	if err != nil {
		return report.MonthlyAttendance{}, err
	}

	result := report.MonthlyAttendance{
		EmployeeID: emp.ID,
		Name:       displayName(emp),
		Year:       req.Year,
		Month:      req.Month,
		Days:       make([]report.DayRecordResponse, 0, len(days)),
		Statistics: computeStatistics(days),
	}
	for _, d := range days {
		result.Days = append(result.Days, report.ToDayResponse(d))
	}

	return result, nil
}

// GetAttendanceStats implements report.ReportService.
func (s *ReportServiceImpl) GetAttendanceStats(ctx context.Context, employeeID int64, startDate, endDate string) (report.AttendanceStats, error) {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(startDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(endDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return report.AttendanceStats{}, errs
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return report.AttendanceStats{}, err
	}
	if !emp.HasChecker() {
		return report.AttendanceStats{}, employee.ErrEmployeeNoChecker
	}

	start, _ := time.ParseInLocation(time.DateOnly, startDate, time.UTC)
	end, _ := time.ParseInLocation(time.DateOnly, endDate, time.UTC)

	days, err := s.reconcileRange(ctx, emp, start, end)
	if err != nil {
		return report.AttendanceStats{}, err
	}

	stats := report.AttendanceStats{
		EmployeeID: emp.ID,
		Name:       displayName(emp),
		Period: report.Period{
			StartDate: startDate,
			EndDate:   endDate,
			TotalDays: len(days),
		},
	}
	if emp.EntryTime != nil {
		stats.ScheduledEntry = *emp.EntryTime
	}
	if emp.ExitTime != nil {
		stats.ScheduledExit = *emp.ExitTime
	}

	scheduledEntry := parseTimeOfDay(emp.EntryTime)
	scheduledExit := parseTimeOfDay(emp.ExitTime)

	for _, d := range days {
		switch d.Status {
		case report.StatusAttendance:
			stats.CompleteDays++
		case report.StatusAbsence:
			stats.AbsenceDays++
		}

		if scheduledEntry != nil && d.FirstCheck != nil {
			if timeOfDay(*d.FirstCheck) > *scheduledEntry+lateTolerance {
				stats.LateArrivals++
			}
		}
		if scheduledExit != nil && d.LastCheck != nil {
			if timeOfDay(*d.LastCheck) < *scheduledExit-lateTolerance {
				stats.EarlyLeaves++
			}
		}
	}

	return stats, nil
}

// ExportDailySummaryCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportDailySummaryCSV(ctx context.Context, dateStr string) ([]byte, error) {
	summary, err := s.GetDailySummary(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "employee", "uid", "entry", "exit", "status", "reason", "working_hours"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range summary.Rows {
		record := []string{
			summary.Date,
			row.Name,
			row.CheckerUID,
			strOrEmpty(row.Entry),
			strOrEmpty(row.Exit),
			string(row.Status),
			strOrEmpty(row.StatusReason),
			fmt.Sprintf("%.2f", row.WorkingHours),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// reconcileRange runs the daily reconciler over [start, end] for one
// employee, loading the snapshot and punches once.
func (s *ReportServiceImpl) reconcileRange(ctx context.Context, emp employee.Employee, start, end time.Time) ([]report.DayRecord, error) {
	snap, err := s.loadSnapshot(ctx, start, end)
	if err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByUIDRange(ctx, emp.CheckerUID, start, endOfDay(end))
	if err != nil {
		return nil, fmt.Errorf("failed to load punches: %w", err)
	}

	perDay := groupByUIDAndDay(punches)[emp.CheckerUID]

	var days []report.DayRecord
	for _, d := range enumerateDates(start, end) {
		exc := snap.Resolve(d, emp.CheckerUID)
		days = append(days, ReconcileDay(d, emp.CheckerUID, perDay[keyOf(d)], exc))
	}

	return days, nil
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

func groupByUIDAndDay(punches []punch.Punch) map[employee.CheckerUID]map[dayKey][]punch.Punch {
	grouped := make(map[employee.CheckerUID]map[dayKey][]punch.Punch)
	for _, p := range punches {
		perDay, ok := grouped[p.UID]
		if !ok {
			perDay = make(map[dayKey][]punch.Punch)
			grouped[p.UID] = perDay
		}
		k := keyOf(p.RecordedAt)
		perDay[k] = append(perDay[k], p)
	}
	return grouped
}

func endOfDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func displayName(emp employee.Employee) string {
	if emp.Fullname != nil && *emp.Fullname != "" {
		return *emp.Fullname
	}
	var parts []string
	if emp.Name != nil && *emp.Name != "" {
		parts = append(parts, *emp.Name)
	}
	if emp.Lastname != nil && *emp.Lastname != "" {
		parts = append(parts, *emp.Lastname)
	}
	return strings.Join(parts, " ")
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseTimeOfDay parses a scheduled "HH:MM" or "HH:MM:SS" value into an
// offset from midnight, or nil when absent or unparseable.
func parseTimeOfDay(v *string) *time.Duration {
	if v == nil || *v == "" {
		return nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.ParseInLocation(layout, *v, time.UTC); err == nil {
			d := timeOfDay(t)
			return &d
		}
	}
	return nil
}

// timeOfDay reduces an instant to its offset from midnight.
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
