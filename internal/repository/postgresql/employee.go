package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/database"
)

const employeeColumns = `pin, name, position, department, legal_entity,
		scheduled_entry, scheduled_exit, tolerance_minutes, tolerance_text,
		meal_minutes, active, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		ORDER BY pin ASC
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByPIN implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByPIN(ctx context.Context, pin string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE pin = $1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, pin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", pin, err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository. Only the allow-listed
// columns can appear in the SET clause; nil fields are left untouched.
func (e *employeeRepositoryImpl) Update(ctx context.Context, pin string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", strings.TrimSpace(*req.Name))
	}
	if req.Position != nil {
		add("position", *req.Position)
	}
	if req.Department != nil {
		add("department", *req.Department)
	}
	if req.LegalEntity != nil {
		add("legal_entity", *req.LegalEntity)
	}
	if req.ScheduledEntry != nil {
		add("scheduled_entry", *req.ScheduledEntry)
	}
	if req.ScheduledExit != nil {
		add("scheduled_exit", *req.ScheduledExit)
	}
	if req.ToleranceMinutes != nil {
		add("tolerance_minutes", *req.ToleranceMinutes)
	}
	if req.MealMinutes != nil {
		add("meal_minutes", *req.MealMinutes)
	}
	if req.Active != nil {
		add("active", *req.Active)
	}

	if len(sets) == 0 {
		return employee.Employee{}, employee.ErrNoFieldsToUpdate
	}

	args = append(args, pin)
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s, updated_at = NOW()
		WHERE pin = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", pin, err)
	}
	return emp, nil
}

// Departments implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Departments(ctx context.Context) ([]string, error) {
	return e.distinct(ctx, "department")
}

// Positions implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Positions(ctx context.Context) ([]string, error) {
	return e.distinct(ctx, "position")
}

func (e *employeeRepositoryImpl) distinct(ctx context.Context, column string) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM employees
		WHERE %s IS NOT NULL AND %s <> ''
		ORDER BY %s ASC
	`, column, column, column, column)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// CreateBatch implements employee.EmployeeRepository. Existing PINs are
// left untouched so re-importing the same roster file is harmless.
func (e *employeeRepositoryImpl) CreateBatch(ctx context.Context, employees []employee.Employee) (int, error) {
	inserted := 0
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employees (pin, name, position, department, legal_entity,
				scheduled_entry, scheduled_exit, tolerance_minutes, meal_minutes, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (pin) DO NOTHING
		`
		for _, emp := range employees {
			tag, err := tx.Exec(ctx, query,
				emp.PIN, emp.Name, emp.Position, emp.Department, emp.LegalEntity,
				emp.ScheduledEntry, emp.ScheduledExit, emp.ToleranceMinutes,
				emp.MealMinutes, emp.Active,
			)
			if err != nil {
				return fmt.Errorf("failed to insert employee %s: %w", emp.PIN, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.PIN, &emp.Name, &emp.Position, &emp.Department, &emp.LegalEntity,
		&emp.ScheduledEntry, &emp.ScheduledExit, &emp.ToleranceMinutes,
		&emp.ToleranceText, &emp.MealMinutes, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
