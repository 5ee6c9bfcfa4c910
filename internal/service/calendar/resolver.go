package calendar

import (
	"log/slog"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
)

type Kind int

const (
	KindNone Kind = iota
	KindWeekend
	KindHoliday
	KindPermission
)

// Exception is the calendar's verdict for one (date, uid) pair.
type Exception struct {
	Kind   Kind
	Reason string
}

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(date time.Time) dateKey {
	y, m, d := date.Date()
	return dateKey{year: y, month: m, day: d}
}

// Snapshot is an immutable view of the exception calendar, loaded once per
// report and discarded afterwards. Resolve is a pure function over it.
type Snapshot struct {
	holidays       []holiday.Holiday
	permsByDate    map[dateKey][]permission.Permission
	employeesByUID map[employee.CheckerUID]employee.Employee
}

// NewSnapshot builds a snapshot from reference data. Employees must be
// supplied in ascending id order; when two active employees share a checker
// uid the first one wins and the collision is logged.
func NewSnapshot(holidays []holiday.Holiday, permissions []permission.Permission, employees []employee.Employee) *Snapshot {
	s := &Snapshot{
		holidays:       holidays,
		permsByDate:    make(map[dateKey][]permission.Permission, len(permissions)),
		employeesByUID: make(map[employee.CheckerUID]employee.Employee, len(employees)),
	}

	for _, p := range permissions {
		k := keyOf(p.Date)
		s.permsByDate[k] = append(s.permsByDate[k], p)
	}

	for _, emp := range employees {
		if !emp.HasChecker() {
			continue
		}
		if prev, ok := s.employeesByUID[emp.CheckerUID]; ok {
			slog.Warn("duplicate checker uid mapping, keeping first employee",
				"checker_uid", emp.CheckerUID.String(),
				"kept_employee_id", prev.ID,
				"ignored_employee_id", emp.ID,
			)
			continue
		}
		s.employeesByUID[emp.CheckerUID] = emp
	}

	return s
}

// EmployeeByUID returns the employee mapped to the uid, if any.
func (s *Snapshot) EmployeeByUID(uid employee.CheckerUID) (employee.Employee, bool) {
	emp, ok := s.employeesByUID[uid]
	return emp, ok
}

// Resolve determines the calendar exception for a date, optionally in the
// context of one uid. Holiday is checked first and short-circuits
// unconditionally; Permission beats Weekend; Weekend is Saturday or Sunday
// on the fixed Gregorian calendar.
func (s *Snapshot) Resolve(date time.Time, uid employee.CheckerUID) Exception {
	for _, h := range s.holidays {
		if h.Matches(date) {
			return Exception{Kind: KindHoliday, Reason: h.Description}
		}
	}

	if !uid.IsZero() {
		emp, hasEmp := s.employeesByUID[uid]
		for _, p := range s.permsByDate[keyOf(date)] {
			if p.CheckerUID == uid || (hasEmp && p.EmployeeID == emp.ID) {
				return Exception{Kind: KindPermission, Reason: p.Reason}
			}
		}
	}

	switch date.Weekday() {
	case time.Saturday:
		return Exception{Kind: KindWeekend, Reason: "Sábado"}
	case time.Sunday:
		return Exception{Kind: KindWeekend, Reason: "Domingo"}
	}

	return Exception{Kind: KindNone}
}
