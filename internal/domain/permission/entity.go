package permission

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

const (
	TypePersonal = "personal"
	TypeMedical  = "medical"
	TypeOfficial = "official"
)

// Permission is one approved leave day for an employee. CheckerUID is
// carried on the record itself so punch matching never depends on a join;
// when it disagrees with the owning employee the record's own uid wins for
// punch matching while employee_id wins for calendar resolution.
type Permission struct {
	ID         int64
	EmployeeID int64
	CheckerUID employee.CheckerUID
	Date       time.Time
	Reason     string
	Type       string
	StartTime  *string
	EndTime    *string
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
