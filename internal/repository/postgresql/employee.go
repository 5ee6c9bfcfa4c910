package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = `id, "user", rfc, phone, position, adscription, entry_time, exit_time,
	   status, fullname, curp, name, employee_no, lastname, checker_uid,
	   checker_device_id, created_at, updated_at`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			"user", rfc, phone, position, adscription, entry_time, exit_time,
			status, fullname, curp, name, employee_no, lastname, checker_uid,
			checker_device_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.User, emp.RFC, emp.Phone, emp.Position, emp.Adscription,
		emp.EntryTime, emp.ExitTime, emp.Status, emp.Fullname, emp.CURP,
		emp.Name, emp.EmployeeNo, emp.Lastname, nullableUID(emp.CheckerUID),
		emp.CheckerDeviceID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeNoTaken
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmployeeNo implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeNo(ctx context.Context, employeeNo int64) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_no = $1`, employeeColumns)

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, employeeNo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return &emp, nil
}

// GetByCheckerUID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCheckerUID(ctx context.Context, uid employee.CheckerUID) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Lowest id wins when several employees share a uid; keeps resolution
	// deterministic.
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE checker_uid = $1 ORDER BY id LIMIT 1`, employeeColumns)

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, uid.String()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by checker uid: %w", err)
	}

	return &emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET "user" = $1, rfc = $2, phone = $3, position = $4, adscription = $5,
			entry_time = $6, exit_time = $7, status = $8, fullname = $9,
			curp = $10, name = $11, employee_no = $12, lastname = $13,
			checker_uid = $14, checker_device_id = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		emp.User, emp.RFC, emp.Phone, emp.Position, emp.Adscription,
		emp.EntryTime, emp.ExitTime, emp.Status, emp.Fullname, emp.CURP,
		emp.Name, emp.EmployeeNo, emp.Lastname, nullableUID(emp.CheckerUID),
		emp.CheckerDeviceID, emp.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmployeeNoTaken
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Adscription != "" {
		conditions = append(conditions, fmt.Sprintf("adscription = $%d", argIdx))
		args = append(args, filter.Adscription)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR lastname ILIKE $%d OR fullname ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.PerPage

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActiveWithChecker implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveWithChecker(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE status = 'active'
		  AND checker_uid IS NOT NULL
		  AND checker_uid <> ''
		ORDER BY id
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListByDevice implements employee.EmployeeRepository.
func (r *employeeRepository) ListByDevice(ctx context.Context, deviceID int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE checker_device_id = $1
		ORDER BY id
	`, employeeColumns)

	rows, err := q.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by device: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func nullableUID(uid employee.CheckerUID) *string {
	if uid.IsZero() {
		return nil
	}
	s := uid.String()
	return &s
}

func scanEmployeeRow(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var uid *string
	err := row.Scan(
		&emp.ID, &emp.User, &emp.RFC, &emp.Phone, &emp.Position, &emp.Adscription,
		&emp.EntryTime, &emp.ExitTime, &emp.Status, &emp.Fullname, &emp.CURP,
		&emp.Name, &emp.EmployeeNo, &emp.Lastname, &uid,
		&emp.CheckerDeviceID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if uid != nil {
		emp.CheckerUID = employee.CheckerUID(*uid)
	}
	return emp, nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}
