package report

import (
	"context"
)

// ReportService defines the reporting engine's business operations.
type ReportService interface {
	// GenerateDeviceReport reconciles every uid seen on the device over the
	// period into per-day records and per-uid statistics.
	GenerateDeviceReport(ctx context.Context, req DeviceReportRequest) (DeviceReport, error)

	// GetDailySummary produces the roll call of all active employees for
	// one date.
	GetDailySummary(ctx context.Context, date string) (DailySummary, error)

	// GetMonthlyAttendance reconciles one employee's full month.
	GetMonthlyAttendance(ctx context.Context, req MonthlyAttendanceRequest) (MonthlyAttendance, error)

	// GetAttendanceStats compares an employee's punches against their
	// scheduled entry/exit times over a date range.
	GetAttendanceStats(ctx context.Context, employeeID int64, startDate, endDate string) (AttendanceStats, error)

	// ExportDailySummaryCSV renders the daily summary as CSV.
	ExportDailySummaryCSV(ctx context.Context, date string) ([]byte, error)

	// ExportDeviceReportExcel renders a device report as an xlsx workbook.
	ExportDeviceReportExcel(ctx context.Context, req DeviceReportRequest) ([]byte, error)
}
