package http

import (
	"log/slog"
	"net/http"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DeviceReport(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	AttendanceStats(w http.ResponseWriter, r *http.Request)
	ExportDailySummaryCSV(w http.ResponseWriter, r *http.Request)
	ExportDeviceReportExcel(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func deviceReportRequest(w http.ResponseWriter, r *http.Request) (report.DeviceReportRequest, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return report.DeviceReportRequest{}, false
	}

	q := r.URL.Query()
	req := report.DeviceReportRequest{
		DeviceID:  id,
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return report.DeviceReportRequest{}, false
	}
	return req, true
}

// DeviceReport implements ReportHandler.
func (h *ReportHandlerImpl) DeviceReport(w http.ResponseWriter, r *http.Request) {
	req, ok := deviceReportRequest(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.GenerateDeviceReport(r.Context(), req)
	if err != nil {
		slog.Error("Device report service error", "device_id", req.DeviceID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailySummary implements ReportHandler.
func (h *ReportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	result, err := h.reportService.GetDailySummary(r.Context(), date)
	if err != nil {
		slog.Error("Daily summary service error", "date", date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	req := report.MonthlyAttendanceRequest{
		EmployeeID: id,
		Year:       queryInt(r, "year", 0),
		Month:      queryInt(r, "month", 0),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlyAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Monthly attendance service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceStats implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query()
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date query parameters are required", nil)
		return
	}

	result, err := h.reportService.GetAttendanceStats(r.Context(), id, startDate, endDate)
	if err != nil {
		slog.Error("Attendance stats service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportDailySummaryCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportDailySummaryCSV(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	body, err := h.reportService.ExportDailySummaryCSV(r.Context(), date)
	if err != nil {
		slog.Error("Export daily summary service error", "date", date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "daily-summary-"+date+".csv", "text/csv", body)
}

// ExportDeviceReportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportDeviceReportExcel(w http.ResponseWriter, r *http.Request) {
	req, ok := deviceReportRequest(w, r)
	if !ok {
		return
	}

	body, err := h.reportService.ExportDeviceReportExcel(r.Context(), req)
	if err != nil {
		slog.Error("Export device report service error", "device_id", req.DeviceID, "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "device-report-" + req.StartDate + "-" + req.EndDate + ".xlsx"
	response.Attachment(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}
