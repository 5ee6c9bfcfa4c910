package permission

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *int64
	Type       string
	From       *time.Time
	To         *time.Time
	Page       int
	PerPage    int
}

type CreatePermissionRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
	Type       string  `json:"type"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	ApprovedBy *string `json:"approved_by"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.Type == "" {
		r.Type = TypePersonal
	}
	if !validator.IsInSlice(r.Type, []string{TypePersonal, TypeMedical, TypeOfficial}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of personal, medical, official",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePermissionRequest struct {
	CreatePermissionRequest
}

// BulkCreatePermissionRequest grants the same leave over an inclusive date
// range, optionally skipping weekends and holidays.
type BulkCreatePermissionRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Type         string  `json:"type"`
	ApprovedBy   *string `json:"approved_by"`
	SkipWeekends bool    `json:"skip_weekends"`
	SkipHolidays bool    `json:"skip_holidays"`
}

func (r *BulkCreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
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

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.Type == "" {
		r.Type = TypePersonal
	}
	if !validator.IsInSlice(r.Type, []string{TypePersonal, TypeMedical, TypeOfficial}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of personal, medical, official",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PermissionResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	CheckerUID string  `json:"checker_uid"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
	Type       string  `json:"type"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	ApprovedBy *string `json:"approved_by"`
}

func ToResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		CheckerUID: p.CheckerUID.String(),
		Date:       p.Date.Format(time.DateOnly),
		Reason:     p.Reason,
		Type:       p.Type,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		ApprovedBy: p.ApprovedBy,
	}
}
