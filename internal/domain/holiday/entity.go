package holiday

import (
	"time"
)

type Holiday struct {
	ID             int64
	Date           time.Time
	Description    string
	IsRecurring    bool
	RecurringMonth *int
	RecurringDay   *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Matches reports whether the holiday applies on the given calendar date.
// Recurring holidays match on month+day regardless of year.
func (h Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		if h.RecurringMonth == nil || h.RecurringDay == nil {
			return false
		}
		return int(date.Month()) == *h.RecurringMonth && date.Day() == *h.RecurringDay
	}
	y1, m1, d1 := h.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
