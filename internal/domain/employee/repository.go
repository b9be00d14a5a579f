package employee

import "context"

// EmployeeRepository defines data access for the roster. The roster is
// mutated only through Update/CreateBatch; everything else is read-only.
type EmployeeRepository interface {
	// List retrieves the whole roster ordered by PIN.
	List(ctx context.Context) ([]Employee, error)

	// GetByPIN retrieves one roster row, ErrEmployeeNotFound when absent.
	GetByPIN(ctx context.Context, pin string) (Employee, error)

	// Update applies the allow-listed partial update and returns the row
	// as stored afterwards.
	Update(ctx context.Context, pin string, req UpdateEmployeeRequest) (Employee, error)

	// Departments returns the distinct non-empty department names.
	Departments(ctx context.Context) ([]string, error)

	// Positions returns the distinct non-empty position names.
	Positions(ctx context.Context) ([]string, error)

	// CreateBatch inserts imported roster rows, skipping PINs that already
	// exist. Returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, employees []Employee) (int, error)
}
