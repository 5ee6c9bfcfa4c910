package holiday

import (
	"context"
)

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	GetHoliday(ctx context.Context, id int64) (HolidayResponse, error)

	// ListHolidays returns every holiday as it falls within the given
	// year; recurring holidays get their display date materialized.
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)

	UpdateHoliday(ctx context.Context, id int64, req UpdateHolidayRequest) (HolidayResponse, error)

	DeleteHoliday(ctx context.Context, id int64) error
}
