package employee

import "context"

// EmployeeService defines roster business logic.
type EmployeeService interface {
	// List retrieves the roster, optionally narrowed by a free-text query
	// matched against PIN, name, department and position.
	List(ctx context.Context, query string) (ListEmployeesResponse, error)

	// Get retrieves one employee by PIN.
	Get(ctx context.Context, pin string) (EmployeeResponse, error)

	// Update applies a partial roster update restricted to the allow-list.
	Update(ctx context.Context, pin string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Departments returns the distinct department names for filter widgets.
	Departments(ctx context.Context) ([]string, error)

	// Positions returns the distinct position names for filter widgets.
	Positions(ctx context.Context) ([]string, error)

	// Snapshot returns the normalized schedule map the derivation engine
	// consumes, keyed by PIN.
	Snapshot(ctx context.Context) (map[string]Schedule, error)
}
