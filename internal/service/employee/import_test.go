package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

type memEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
	nextID    int64
}

func (m *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	m.nextID++
	emp.ID = m.nextID
	m.employees = append(m.employees, emp)
	return emp, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	for i := range m.employees {
		if m.employees[i].ID == emp.ID {
			m.employees[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) GetByEmployeeNo(_ context.Context, no int64) (*employee.Employee, error) {
	for i := range m.employees {
		if m.employees[i].EmployeeNo != nil && *m.employees[i].EmployeeNo == no {
			return &m.employees[i], nil
		}
	}
	return nil, nil
}

func (m *memEmployeeRepo) GetByCheckerUID(_ context.Context, uid employee.CheckerUID) (*employee.Employee, error) {
	for i := range m.employees {
		if m.employees[i].CheckerUID == uid {
			return &m.employees[i], nil
		}
	}
	return nil, nil
}

func TestImportCSVCreatesAndUpdates(t *testing.T) {
	no := int64(1001)
	name := "Luis"
	repo := &memEmployeeRepo{
		employees: []employee.Employee{
			{ID: 1, EmployeeNo: &no, Name: &name, Status: employee.StatusActive, CheckerUID: "42"},
		},
		nextID: 1,
	}
	svc := &EmployeeServiceImpl{EmployeeRepository: repo}

	input := strings.Join([]string{
		"employee_no,name,lastname,status,checker_uid",
		"1001,Luis,García,active,42",
		"1002,Ana,Torres,active,43",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, repo.employees, 2)

	// Updated row keeps its id and gains the lastname.
	assert.Equal(t, int64(1), repo.employees[0].ID)
	require.NotNil(t, repo.employees[0].Lastname)
	assert.Equal(t, "García", *repo.employees[0].Lastname)
}

func TestImportCSVMatchesByCheckerUID(t *testing.T) {
	name := "Luis"
	repo := &memEmployeeRepo{
		employees: []employee.Employee{
			{ID: 1, Name: &name, Status: employee.StatusActive, CheckerUID: "42"},
		},
		nextID: 1,
	}
	svc := &EmployeeServiceImpl{EmployeeRepository: repo}

	input := strings.Join([]string{
		"name,checker_uid,position",
		"Luis,42,Analista",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	require.NotNil(t, repo.employees[0].Position)
	assert.Equal(t, "Analista", *repo.employees[0].Position)
}

func TestImportCSVSkipsBadRows(t *testing.T) {
	repo := &memEmployeeRepo{}
	svc := &EmployeeServiceImpl{EmployeeRepository: repo}

	input := strings.Join([]string{
		"employee_no,name,status,checker_uid",
		"not-a-number,Luis,active,42",
		",, ,",
		"1003,Rosa,active,44",
		"1004,Juan,retired,45",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.Errors, 3)
}

func TestImportCSVRejectsMissingHeader(t *testing.T) {
	svc := &EmployeeServiceImpl{EmployeeRepository: &memEmployeeRepo{}}

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("foo,bar\n1,2"))
	assert.ErrorIs(t, err, employee.ErrImportFileMalformed)
}
