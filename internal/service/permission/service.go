package permission

import (
	"context"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
)

type PermissionServiceImpl struct {
	tx database.TxManager
	permission.PermissionRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
}

func NewPermissionService(
	tx database.TxManager,
	permissionRepo permission.PermissionRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) permission.PermissionService {
	return &PermissionServiceImpl{
		tx:                   tx,
		PermissionRepository: permissionRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
	}
}

// CreatePermission implements permission.PermissionService. The checker uid
// is backfilled from the owning employee so punch matching never needs a
// join at report time.
func (s *PermissionServiceImpl) CreatePermission(ctx context.Context, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	p := fromRequest(req)
	p.CheckerUID = emp.CheckerUID

	created, err := s.PermissionRepository.Create(ctx, p)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	return permission.ToResponse(created), nil
}

// BulkCreate implements permission.PermissionService.
func (s *PermissionServiceImpl) BulkCreate(ctx context.Context, req permission.BulkCreatePermissionRequest) ([]permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	var holidays []holiday.Holiday
	if req.SkipHolidays {
		holidays, err = s.HolidayRepository.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	start, _ := time.ParseInLocation(time.DateOnly, req.StartDate, time.UTC)
	end, _ := time.ParseInLocation(time.DateOnly, req.EndDate, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if req.SkipWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		if req.SkipHolidays && matchesAny(holidays, d) {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, permission.ErrEmptyRange
	}

	var responses []permission.PermissionResponse
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, d := range dates {
			p := permission.Permission{
				EmployeeID: emp.ID,
				CheckerUID: emp.CheckerUID,
				Date:       d,
				Reason:     req.Reason,
				Type:       req.Type,
				ApprovedBy: req.ApprovedBy,
			}
			created, err := s.PermissionRepository.Create(txCtx, p)
			if err != nil {
				return err
			}
			responses = append(responses, permission.ToResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// GetPermission implements permission.PermissionService.
func (s *PermissionServiceImpl) GetPermission(ctx context.Context, id int64) (permission.PermissionResponse, error) {
	p, err := s.PermissionRepository.GetByID(ctx, id)
	if err != nil {
		return permission.PermissionResponse{}, err
	}
	return permission.ToResponse(p), nil
}

// ListPermissions implements permission.PermissionService.
func (s *PermissionServiceImpl) ListPermissions(ctx context.Context, filter permission.Filter) (permission.ListPermissionsResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}

	permissions, total, err := s.PermissionRepository.List(ctx, filter)
	if err != nil {
		return permission.ListPermissionsResponse{}, err
	}

	resp := permission.ListPermissionsResponse{
		Permissions: make([]permission.PermissionResponse, 0, len(permissions)),
		Total:       total,
		Page:        filter.Page,
		PerPage:     filter.PerPage,
	}
	for _, p := range permissions {
		resp.Permissions = append(resp.Permissions, permission.ToResponse(p))
	}
	return resp, nil
}

// UpdatePermission implements permission.PermissionService.
func (s *PermissionServiceImpl) UpdatePermission(ctx context.Context, id int64, req permission.UpdatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	existing, err := s.PermissionRepository.GetByID(ctx, id)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	p := fromRequest(req.CreatePermissionRequest)
	p.ID = existing.ID
	p.CheckerUID = emp.CheckerUID
	p.CreatedAt = existing.CreatedAt

	if err := s.PermissionRepository.Update(ctx, p); err != nil {
		return permission.PermissionResponse{}, err
	}

	return permission.ToResponse(p), nil
}

// DeletePermission implements permission.PermissionService.
func (s *PermissionServiceImpl) DeletePermission(ctx context.Context, id int64) error {
	return s.PermissionRepository.Delete(ctx, id)
}

func fromRequest(req permission.CreatePermissionRequest) permission.Permission {
	date, _ := time.ParseInLocation(time.DateOnly, req.Date, time.UTC)
	return permission.Permission{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Reason:     req.Reason,
		Type:       req.Type,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ApprovedBy: req.ApprovedBy,
	}
}

func matchesAny(holidays []holiday.Holiday, d time.Time) bool {
	for _, h := range holidays {
		if h.Matches(d) {
			return true
		}
	}
	return false
}
