package holiday

import (
	"fmt"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date           string `json:"date"`
	Description    string `json:"description"`
	IsRecurring    bool   `json:"is_recurring"`
	RecurringMonth *int   `json:"recurring_month"`
	RecurringDay   *int   `json:"recurring_day"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
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

	if r.IsRecurring {
		if r.RecurringMonth == nil || *r.RecurringMonth < 1 || *r.RecurringMonth > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "recurring_month",
				Message: "recurring_month must be between 1 and 12",
			})
		}
		if r.RecurringDay == nil || *r.RecurringDay < 1 || *r.RecurringDay > 31 {
			errs = append(errs, validator.ValidationError{
				Field:   "recurring_day",
				Message: "recurring_day must be between 1 and 31",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	CreateHolidayRequest
}

type HolidayResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	IsRecurring bool   `json:"is_recurring"`
	// DisplayDate is the date the holiday falls on within the requested
	// year; for recurring holidays this differs from the stored date.
	DisplayDate string `json:"display_date"`
}

func ToResponse(h Holiday, year int) HolidayResponse {
	resp := HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format(time.DateOnly),
		Description: h.Description,
		IsRecurring: h.IsRecurring,
		DisplayDate: h.Date.Format(time.DateOnly),
	}
	if h.IsRecurring && h.RecurringMonth != nil && h.RecurringDay != nil {
		resp.DisplayDate = fmt.Sprintf("%04d-%02d-%02d", year, *h.RecurringMonth, *h.RecurringDay)
	}
	return resp
}
