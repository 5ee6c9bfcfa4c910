package employee

import (
	"context"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, fromRequest(req))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListEmployeesResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		Total:     total,
		Page:      filter.Page,
		PerPage:   filter.PerPage,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(emp))
	}
	return resp, nil
}

// ListByDevice implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDevice(ctx context.Context, deviceID int64) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := fromRequest(req.CreateEmployeeRequest)
	updated.ID = emp.ID
	updated.CreatedAt = emp.CreatedAt

	if err := s.EmployeeRepository.Update(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func fromRequest(req employee.CreateEmployeeRequest) employee.Employee {
	return employee.Employee{
		User:            req.User,
		RFC:             req.RFC,
		Phone:           req.Phone,
		Position:        req.Position,
		Adscription:     req.Adscription,
		EntryTime:       req.EntryTime,
		ExitTime:        req.ExitTime,
		Status:          req.Status,
		Fullname:        req.Fullname,
		CURP:            req.CURP,
		Name:            req.Name,
		EmployeeNo:      req.EmployeeNo,
		Lastname:        req.Lastname,
		CheckerUID:      employee.CheckerUID(req.CheckerUID),
		CheckerDeviceID: req.CheckerDeviceID,
	}
}
