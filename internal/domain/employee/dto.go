package employee

import (
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

type Filter struct {
	Status      string
	Adscription string
	Search      string
	Page        int
	PerPage     int
}

type CreateEmployeeRequest struct {
	User            *string `json:"user"`
	RFC             *string `json:"rfc"`
	Phone           *string `json:"phone"`
	Position        *string `json:"position"`
	Adscription     *string `json:"adscription"`
	EntryTime       *string `json:"entry_time"`
	ExitTime        *string `json:"exit_time"`
	Status          string  `json:"status"`
	Fullname        *string `json:"fullname"`
	CURP            *string `json:"curp"`
	Name            *string `json:"name"`
	EmployeeNo      *int64  `json:"employee_no"`
	Lastname        *string `json:"lastname"`
	CheckerUID      string  `json:"checker_uid"`
	CheckerDeviceID *int64  `json:"checker_device_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == "" {
		r.Status = StatusActive
	}
	if !validator.IsInSlice(r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either active or inactive",
		})
	}

	if r.Name == nil || validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.EntryTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_time",
				Message: "entry_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.ExitTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "exit_time",
				Message: "exit_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID              int64   `json:"id"`
	User            *string `json:"user"`
	RFC             *string `json:"rfc"`
	Phone           *string `json:"phone"`
	Position        *string `json:"position"`
	Adscription     *string `json:"adscription"`
	EntryTime       *string `json:"entry_time"`
	ExitTime        *string `json:"exit_time"`
	Status          string  `json:"status"`
	Fullname        *string `json:"fullname"`
	CURP            *string `json:"curp"`
	Name            *string `json:"name"`
	EmployeeNo      *int64  `json:"employee_no"`
	Lastname        *string `json:"lastname"`
	CheckerUID      string  `json:"checker_uid"`
	CheckerDeviceID *int64  `json:"checker_device_id"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		User:            e.User,
		RFC:             e.RFC,
		Phone:           e.Phone,
		Position:        e.Position,
		Adscription:     e.Adscription,
		EntryTime:       e.EntryTime,
		ExitTime:        e.ExitTime,
		Status:          e.Status,
		Fullname:        e.Fullname,
		CURP:            e.CURP,
		Name:            e.Name,
		EmployeeNo:      e.EmployeeNo,
		Lastname:        e.Lastname,
		CheckerUID:      e.CheckerUID.String(),
		CheckerDeviceID: e.CheckerDeviceID,
	}
}

// ImportResult summarizes one CSV bulk import run.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
