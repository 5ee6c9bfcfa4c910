package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for employee reference data.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	ListEmployees(ctx context.Context, filter Filter) (ListEmployeesResponse, error)

	ListByDevice(ctx context.Context, deviceID int64) ([]EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id int64) error

	// ImportCSV bulk-upserts employees from a CSV stream. Rows are matched
	// by employee_no first, then checker_uid; unmatched rows are created.
	// Malformed rows are skipped and reported, never fatal.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"per_page"`
}
