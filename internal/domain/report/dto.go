package report

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

type DeviceReportRequest struct {
	DeviceID  int64  `json:"device_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DeviceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DeviceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); ok && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyAttendanceRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Year       int   `json:"year"`
	Month      int   `json:"month"`
}

func (r *MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
}

type DayRecordResponse struct {
	Date         string  `json:"date"`
	FirstCheck   *string `json:"first_check"`
	LastCheck    *string `json:"last_check"`
	Status       Status  `json:"status"`
	StatusReason *string `json:"status_reason"`
	WorkingHours float64 `json:"working_hours"`
}

func ToDayResponse(d DayRecord) DayRecordResponse {
	resp := DayRecordResponse{
		Date:         d.Date.Format(time.DateOnly),
		Status:       d.Status,
		StatusReason: d.StatusReason,
		WorkingHours: d.WorkingHours,
	}
	if d.FirstCheck != nil {
		s := d.FirstCheck.Format(time.TimeOnly)
		resp.FirstCheck = &s
	}
	if d.LastCheck != nil {
		s := d.LastCheck.Format(time.TimeOnly)
		resp.LastCheck = &s
	}
	return resp
}

type UserAttendance struct {
	UID        string              `json:"uid"`
	Days       []DayRecordResponse `json:"days"`
	Statistics Statistics          `json:"statistics"`
}

type DeviceInfo struct {
	ID           int64   `json:"id"`
	IP           string  `json:"ip"`
	SerialNumber string  `json:"serial_number"`
	DeviceName   *string `json:"device_name"`
}

type DeviceReport struct {
	Device       DeviceInfo       `json:"device"`
	Period       Period           `json:"period"`
	GeneratedAt  time.Time        `json:"generated_at"`
	TotalUsers   int              `json:"total_users"`
	TotalRecords int              `json:"total_records"`
	Attendance   []UserAttendance `json:"attendance"`
}

// DailySummaryRow is one employee's line in the daily roll call.
type DailySummaryRow struct {
	EmployeeID   int64   `json:"employee_id"`
	Name         string  `json:"name"`
	CheckerUID   string  `json:"checker_uid"`
	Entry        *string `json:"entry"`
	Exit         *string `json:"exit"`
	Status       Status  `json:"status"`
	StatusReason *string `json:"status_reason"`
	WorkingHours float64 `json:"working_hours"`
}

type DailySummary struct {
	Date    string            `json:"date"`
	Rows    []DailySummaryRow `json:"rows"`
	Present int               `json:"present"`
	Absent  int               `json:"absent"`
}

type MonthlyAttendance struct {
	EmployeeID int64               `json:"employee_id"`
	Name       string              `json:"name"`
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	Days       []DayRecordResponse `json:"days"`
	Statistics Statistics          `json:"statistics"`
}

// AttendanceStats compares an employee's punches against their scheduled
// entry and exit times over a period.
type AttendanceStats struct {
	EmployeeID     int64  `json:"employee_id"`
	Name           string `json:"name"`
	Period         Period `json:"period"`
	LateArrivals   int    `json:"late_arrivals"`
	EarlyLeaves    int    `json:"early_leaves"`
	CompleteDays   int    `json:"complete_days"`
	AbsenceDays    int    `json:"absence_days"`
	ScheduledEntry string `json:"scheduled_entry,omitempty"`
	ScheduledExit  string `json:"scheduled_exit,omitempty"`
}
