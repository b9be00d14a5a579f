package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, query string) (employee.ListEmployeesResponse, error) {
	rows, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	responses := make([]employee.EmployeeResponse, 0, len(rows))
	for _, row := range rows {
		if query != "" && !matchesQuery(row, query) {
			continue
		}
		responses = append(responses, employee.MapEmployeeToResponse(row))
	}

	return employee.ListEmployeesResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, pin string) (employee.EmployeeResponse, error) {
	if !validator.IsNumeric(pin) {
		return employee.EmployeeResponse{}, employee.ErrInvalidPIN
	}

	row, err := s.employeeRepo.GetByPIN(ctx, pin)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.MapEmployeeToResponse(row), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, pin string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !validator.IsNumeric(pin) {
		return employee.EmployeeResponse{}, employee.ErrInvalidPIN
	}
	if req.Empty() {
		return employee.EmployeeResponse{}, employee.ErrNoFieldsToUpdate
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	row, err := s.employeeRepo.Update(ctx, pin, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.MapEmployeeToResponse(row), nil
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	values, err := s.employeeRepo.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// Positions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Positions(ctx context.Context) ([]string, error) {
	values, err := s.employeeRepo.Positions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// Snapshot implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Snapshot(ctx context.Context) (map[string]employee.Schedule, error) {
	rows, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	roster := make(map[string]employee.Schedule, len(rows))
	for _, row := range rows {
		roster[row.PIN] = row.Normalize()
	}
	return roster, nil
}

func matchesQuery(e employee.Employee, query string) bool {
	fields := []string{e.PIN, e.Name}
	if e.Department != nil {
		fields = append(fields, *e.Department)
	}
	if e.Position != nil {
		fields = append(fields, *e.Position)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
