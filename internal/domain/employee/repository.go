package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee reference data.
// The reporting engine only ever reads employees; writes come from the CRUD
// and import surfaces.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByEmployeeNo looks an employee up by payroll number. Used by the
	// CSV importer to decide between insert and update.
	GetByEmployeeNo(ctx context.Context, employeeNo int64) (*Employee, error)

	GetByCheckerUID(ctx context.Context, uid CheckerUID) (*Employee, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id int64) error

	// List retrieves employees matching the filter, ordered by id.
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)

	// ListActiveWithChecker returns every active employee that has a
	// checker uid, ordered by id ascending. The calendar snapshot is built
	// from this set; the ascending order is what makes duplicate-uid
	// resolution deterministic.
	ListActiveWithChecker(ctx context.Context) ([]Employee, error)

	// ListByDevice returns employees enrolled against the given terminal.
	ListByDevice(ctx context.Context, deviceID int64) ([]Employee, error)
}
