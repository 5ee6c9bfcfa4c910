package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type permissionRepository struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create implements permission.PermissionRepository.
func (r *permissionRepository) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO permissions (
			employee_id, checker_uid, date, reason, type, start_time, end_time, approved_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.CheckerUID.String(), p.Date, p.Reason, p.Type,
		p.StartTime, p.EndTime, p.ApprovedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return p, nil
}

// GetByID implements permission.PermissionRepository.
func (r *permissionRepository) GetByID(ctx context.Context, id int64) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, checker_uid, date, reason, type,
			   start_time::text, end_time::text, approved_by, created_at, updated_at
		FROM permissions
		WHERE id = $1
	`

	p, err := scanPermissionRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission: %w", err)
	}

	return p, nil
}

// Update implements permission.PermissionRepository.
func (r *permissionRepository) Update(ctx context.Context, p permission.Permission) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permissions
		SET employee_id = $1, checker_uid = $2, date = $3, reason = $4,
			type = $5, start_time = $6, end_time = $7, approved_by = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		p.EmployeeID, p.CheckerUID.String(), p.Date, p.Reason, p.Type,
		p.StartTime, p.EndTime, p.ApprovedBy, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update permission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}

	return nil
}

// Delete implements permission.PermissionRepository.
func (r *permissionRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}

	return nil
}

// List implements permission.PermissionRepository.
func (r *permissionRepository) List(ctx context.Context, filter permission.Filter) ([]permission.Permission, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, filter.Type)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM permissions WHERE %s", where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count permissions: %w", err)
	}

	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.PerPage

	query := fmt.Sprintf(`
		SELECT id, employee_id, checker_uid, date, reason, type,
			   start_time::text, end_time::text, approved_by, created_at, updated_at
		FROM permissions
		WHERE %s
		ORDER BY date, id
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	permissions, err := scanPermissions(rows)
	if err != nil {
		return nil, 0, err
	}

	return permissions, total, nil
}

// ListByDateRange implements permission.PermissionRepository.
func (r *permissionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, checker_uid, date, reason, type,
			   start_time::text, end_time::text, approved_by, created_at, updated_at
		FROM permissions
		WHERE date >= $1 AND date <= $2
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions by range: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

func scanPermissionRow(row pgx.Row) (permission.Permission, error) {
	var p permission.Permission
	var uid *string
	err := row.Scan(
		&p.ID, &p.EmployeeID, &uid, &p.Date, &p.Reason, &p.Type,
		&p.StartTime, &p.EndTime, &p.ApprovedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return permission.Permission{}, err
	}
	if uid != nil {
		p.CheckerUID = employee.CheckerUID(*uid)
	}
	return p, nil
}

func scanPermissions(rows pgx.Rows) ([]permission.Permission, error) {
	var permissions []permission.Permission
	for rows.Next() {
		p, err := scanPermissionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read permissions: %w", err)
	}
	return permissions, nil
}
