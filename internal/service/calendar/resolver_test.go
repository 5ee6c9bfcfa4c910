package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestResolveWeekend(t *testing.T) {
	snap := NewSnapshot(nil, nil, nil)

	tests := []struct {
		name   string
		date   time.Time
		kind   Kind
		reason string
	}{
		{"saturday", date(2024, time.June, 8), KindWeekend, "Sábado"},
		{"sunday", date(2024, time.June, 9), KindWeekend, "Domingo"},
		{"monday", date(2024, time.June, 3), KindNone, ""},
		{"friday", date(2024, time.June, 7), KindNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exc := snap.Resolve(tt.date, "42")
			assert.Equal(t, tt.kind, exc.Kind)
			assert.Equal(t, tt.reason, exc.Reason)
		})
	}
}

func TestResolveHoliday(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 1, Date: date(2024, time.June, 10), Description: "Corpus Christi"},
		{
			ID:             2,
			Date:           date(2020, time.December, 25),
			Description:    "Navidad",
			IsRecurring:    true,
			RecurringMonth: intPtr(12),
			RecurringDay:   intPtr(25),
		},
	}
	snap := NewSnapshot(holidays, nil, nil)

	t.Run("fixed holiday matches exact date", func(t *testing.T) {
		exc := snap.Resolve(date(2024, time.June, 10), "42")
		assert.Equal(t, KindHoliday, exc.Kind)
		assert.Equal(t, "Corpus Christi", exc.Reason)
	})

	t.Run("fixed holiday does not match other years", func(t *testing.T) {
		exc := snap.Resolve(date(2025, time.June, 10), "42")
		assert.Equal(t, KindNone, exc.Kind)
	})

	t.Run("recurring holiday matches any year", func(t *testing.T) {
		for _, year := range []int{2023, 2024, 2031} {
			exc := snap.Resolve(date(year, time.December, 25), "42")
			assert.Equal(t, KindHoliday, exc.Kind)
			assert.Equal(t, "Navidad", exc.Reason)
		}
	})

	t.Run("holiday beats weekend", func(t *testing.T) {
		// 2027-12-25 is a Saturday.
		exc := snap.Resolve(date(2027, time.December, 25), "42")
		assert.Equal(t, KindHoliday, exc.Kind)
	})
}

func TestResolvePermission(t *testing.T) {
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42"},
	}
	permissions := []permission.Permission{
		{ID: 1, EmployeeID: 7, CheckerUID: "42", Date: date(2024, time.June, 10), Reason: "Cita médica"},
		{ID: 2, EmployeeID: 9, CheckerUID: "99", Date: date(2024, time.June, 11), Reason: "Trámite"},
	}
	snap := NewSnapshot(nil, permissions, employees)

	t.Run("matches by checker uid", func(t *testing.T) {
		exc := snap.Resolve(date(2024, time.June, 10), "42")
		assert.Equal(t, KindPermission, exc.Kind)
		assert.Equal(t, "Cita médica", exc.Reason)
	})

	t.Run("matches by employee id when record uid disagrees", func(t *testing.T) {
		perms := []permission.Permission{
			{ID: 3, EmployeeID: 7, CheckerUID: "stale-uid", Date: date(2024, time.June, 12), Reason: "Permiso"},
		}
		s := NewSnapshot(nil, perms, employees)
		exc := s.Resolve(date(2024, time.June, 12), "42")
		assert.Equal(t, KindPermission, exc.Kind)
	})

	t.Run("other employee's permission does not apply", func(t *testing.T) {
		exc := snap.Resolve(date(2024, time.June, 11), "42")
		assert.Equal(t, KindNone, exc.Kind)
	})

	t.Run("no uid context skips permission check", func(t *testing.T) {
		exc := snap.Resolve(date(2024, time.June, 10), "")
		assert.Equal(t, KindNone, exc.Kind)
	})

	t.Run("permission beats weekend", func(t *testing.T) {
		perms := []permission.Permission{
			{ID: 4, EmployeeID: 7, CheckerUID: "42", Date: date(2024, time.June, 8), Reason: "Permiso"},
		}
		s := NewSnapshot(nil, perms, employees)
		exc := s.Resolve(date(2024, time.June, 8), "42")
		assert.Equal(t, KindPermission, exc.Kind)
	})
}

func TestResolveHolidayBeatsPermission(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 1, Date: date(2024, time.June, 10), Description: "Feriado"},
	}
	employees := []employee.Employee{
		{ID: 7, Status: employee.StatusActive, CheckerUID: "42"},
	}
	permissions := []permission.Permission{
		{ID: 1, EmployeeID: 7, CheckerUID: "42", Date: date(2024, time.June, 10), Reason: "Permiso"},
	}
	snap := NewSnapshot(holidays, permissions, employees)

	exc := snap.Resolve(date(2024, time.June, 10), "42")
	assert.Equal(t, KindHoliday, exc.Kind)
	assert.Equal(t, "Feriado", exc.Reason)
}

func TestSnapshotDuplicateUID(t *testing.T) {
	employees := []employee.Employee{
		{ID: 3, Status: employee.StatusActive, CheckerUID: "42"},
		{ID: 8, Status: employee.StatusActive, CheckerUID: "42"},
	}
	snap := NewSnapshot(nil, nil, employees)

	emp, ok := snap.EmployeeByUID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(3), emp.ID, "lowest id wins on duplicate uid")
}
