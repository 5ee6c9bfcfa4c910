package employee

import (
	"time"
)

// CheckerUID is the device-local user identifier tying punches to an
// employee. It lives in a string domain and must only ever be compared as a
// string, never against the numeric employee id or payroll number.
type CheckerUID string

func (u CheckerUID) IsZero() bool {
	return u == ""
}

func (u CheckerUID) String() string {
	return string(u)
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID              int64
	User            *string
	RFC             *string
	Phone           *string
	Position        *string
	Adscription     *string
	EntryTime       *string
	ExitTime        *string
	Status          string
	Fullname        *string
	CURP            *string
	Name            *string
	EmployeeNo      *int64
	Lastname        *string
	CheckerUID      CheckerUID
	CheckerDeviceID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasChecker reports whether the employee can be matched against punches at
// all. Employees without a checker uid have no derivable attendance.
func (e Employee) HasChecker() bool {
	return !e.CheckerUID.IsZero()
}
