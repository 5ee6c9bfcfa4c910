package holiday

import (
	"context"
)

// HolidayRepository defines data access methods for holidays.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	GetByID(ctx context.Context, id int64) (Holiday, error)

	Update(ctx context.Context, h Holiday) error

	Delete(ctx context.Context, id int64) error

	// ListAll returns every holiday ordered by date. The calendar snapshot
	// loads this once per report; matching against a concrete date is done
	// in memory.
	ListAll(ctx context.Context) ([]Holiday, error)
}
