package punch

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

type Filter struct {
	DeviceID *int64
	UID      string
	From     *time.Time
	To       *time.Time
	Page     int
	PerPage  int
}

type ListPunchesRequest struct {
	DeviceID *int64 `json:"device_id"`
	UID      string `json:"uid"`
	From     string `json:"from"`
	To       string `json:"to"`
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

func (r *ListPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.From); r.From != "" && !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.To); r.To != "" && !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if r.From != "" && r.To != "" && r.To < r.From {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         int64  `json:"id"`
	DeviceID   int64  `json:"device_id"`
	UID        string `json:"uid"`
	RecordedAt string `json:"recorded_at"`
}

func ToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		DeviceID:   p.DeviceID,
		UID:        p.UID.String(),
		RecordedAt: p.RecordedAt.Format("2006-01-02 15:04:05"),
	}
}

// Stats is the aggregate view over the whole punch store.
type Stats struct {
	TotalRecords int64         `json:"total_records"`
	ByDevice     []DeviceCount `json:"by_device"`
	ByDay        []DayCount    `json:"by_day"`
}

type DeviceCount struct {
	DeviceID       int64      `json:"device_id"`
	Count          int64      `json:"count"`
	LastRecordedAt *time.Time `json:"last_recorded_at"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
