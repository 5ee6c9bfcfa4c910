package employee

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

// ImportCSV implements employee.EmployeeService. Rows are matched against
// existing employees by payroll number first, then by checker uid; anything
// unmatched becomes a new record. A bad row is reported and skipped, never
// fatal to the rest of the file.
func (s *EmployeeServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (employee.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return employee.ImportResult{}, employee.ErrImportFileMalformed
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(strings.ToLower(col))] = i
	}
	if _, ok := idx["name"]; !ok {
		return employee.ImportResult{}, employee.ErrImportFileMalformed
	}

	var result employee.ImportResult

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		emp, rowErr := parseRow(row, idx)
		if rowErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, rowErr))
			continue
		}

		existing, err := s.matchExisting(ctx, emp)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if existing != nil {
			emp.ID = existing.ID
			emp.CreatedAt = existing.CreatedAt
			if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
				continue
			}
			result.Updated++
		} else {
			if _, err := s.EmployeeRepository.Create(ctx, emp); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
				continue
			}
			result.Created++
		}
	}

	slog.Info("employee import finished",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)

	return result, nil
}

func (s *EmployeeServiceImpl) matchExisting(ctx context.Context, emp employee.Employee) (*employee.Employee, error) {
	if emp.EmployeeNo != nil {
		existing, err := s.EmployeeRepository.GetByEmployeeNo(ctx, *emp.EmployeeNo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	if emp.HasChecker() {
		return s.EmployeeRepository.GetByCheckerUID(ctx, emp.CheckerUID)
	}
	return nil, nil
}

func parseRow(row []string, idx map[string]int) (employee.Employee, error) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(name string) *string {
		if v := field(name); v != "" {
			return &v
		}
		return nil
	}

	name := field("name")
	if name == "" {
		return employee.Employee{}, fmt.Errorf("name is required")
	}

	emp := employee.Employee{
		Name:        &name,
		User:        optional("user"),
		RFC:         optional("rfc"),
		CURP:        optional("curp"),
		Phone:       optional("phone"),
		Position:    optional("position"),
		Adscription: optional("adscription"),
		EntryTime:   optional("entry_time"),
		ExitTime:    optional("exit_time"),
		Fullname:    optional("fullname"),
		Lastname:    optional("lastname"),
		Status:      field("status"),
		CheckerUID:  employee.CheckerUID(field("checker_uid")),
	}
	if emp.Status == "" {
		emp.Status = employee.StatusActive
	}
	if emp.Status != employee.StatusActive && emp.Status != employee.StatusInactive {
		return employee.Employee{}, fmt.Errorf("invalid status %q", emp.Status)
	}

	if v := field("employee_no"); v != "" {
		no, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid employee_no %q", v)
		}
		emp.EmployeeNo = &no
	}

	if v := field("checker_device_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid checker_device_id %q", v)
		}
		emp.CheckerDeviceID = &id
	}

	return emp, nil
}
