package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
)

// ExportDeviceReportExcel implements report.ReportService. The workbook has
// one summary sheet plus one sheet per uid with its day-by-day records.
func (s *ReportServiceImpl) ExportDeviceReportExcel(ctx context.Context, req report.DeviceReportRequest) ([]byte, error) {
	rep, err := s.GenerateDeviceReport(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(summarySheet, "A1", "Device")
	f.SetCellValue(summarySheet, "B1", rep.Device.SerialNumber)
	f.SetCellValue(summarySheet, "A2", "Period")
	f.SetCellValue(summarySheet, "B2", fmt.Sprintf("%s to %s", rep.Period.StartDate, rep.Period.EndDate))
	f.SetCellValue(summarySheet, "A3", "Generated")
	f.SetCellValue(summarySheet, "B3", rep.GeneratedAt.Format("2006-01-02 15:04:05"))

	summaryHeaders := []string{"UID", "Complete", "Entry only", "Absences", "Weekends", "Holidays", "Permissions", "Working days", "Total hours", "Attendance rate"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(summarySheet, cell, h)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}

	for row, ua := range rep.Attendance {
		values := []interface{}{
			ua.UID,
			ua.Statistics.CompleteDays,
			ua.Statistics.EntryOnlyDays,
			ua.Statistics.AbsenceDays,
			ua.Statistics.WeekendDays,
			ua.Statistics.HolidayDays,
			ua.Statistics.PermissionDays,
			ua.Statistics.WorkingDays,
			ua.Statistics.TotalHours,
			ua.Statistics.AttendanceRate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+6)
			f.SetCellValue(summarySheet, cell, v)
		}
	}

	dayHeaders := []string{"Date", "First check", "Last check", "Status", "Reason", "Working hours"}
	for _, ua := range rep.Attendance {
		sheet := "UID " + ua.UID
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet for uid %s: %w", ua.UID, err)
		}

		for i, h := range dayHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}

		for row, day := range ua.Days {
			values := []interface{}{
				day.Date,
				strOrEmpty(day.FirstCheck),
				strOrEmpty(day.LastCheck),
				string(day.Status),
				strOrEmpty(day.StatusReason),
				day.WorkingHours,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
