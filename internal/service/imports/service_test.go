package imports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/imports"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
)

type fakeEmployeeRepo struct {
	created  []employee.Employee
	inserted int
	err      error
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) GetByPIN(ctx context.Context, pin string) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, pin string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Departments(ctx context.Context) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Positions(ctx context.Context) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) CreateBatch(ctx context.Context, employees []employee.Employee) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = employees
	if f.inserted == 0 {
		f.inserted = len(employees)
	}
	return f.inserted, nil
}

type fakePunchRepo struct {
	created []punch.Punch
	err     error
}

func (f *fakePunchRepo) GetRange(ctx context.Context, start, end string) ([]punch.Punch, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePunchRepo) CreateBatch(ctx context.Context, punches []punch.Punch) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = punches
	return len(punches), nil
}

func TestImportPunches(t *testing.T) {
	file := strings.Join([]string{
		"device_ip,pin,timestamp",
		"10.0.0.5,101,2024-03-01T09:10:00Z",
		"10.0.0.5,101,2024-03-01T17:45:00Z",
		"10.0.0.5,,2024-03-01T09:00:00Z", // blank pin
		"10.0.0.5,202",                   // short row
		"10.0.0.6,202,2024-03-01 08:58:00",
	}, "\n")

	repo := &fakePunchRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo)

	result, err := svc.ImportPunches(context.Background(), strings.NewReader(file))
	require.NoError(t, err)

	assert.Equal(t, 5, result.Rows)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.NotEmpty(t, result.BatchID)

	require.Len(t, repo.created, 3)
	first := repo.created[0]
	assert.Equal(t, "10.0.0.5", first.DeviceIP)
	assert.Equal(t, "101", first.PIN)
	// Timestamp text is stored untouched.
	assert.Equal(t, "2024-03-01T09:10:00Z", first.Timestamp)
	require.NotNil(t, first.BatchID)
	assert.Equal(t, result.BatchID, *first.BatchID)
}

func TestImportPunches_EmptyFile(t *testing.T) {
	svc := NewImportService(&fakeEmployeeRepo{}, &fakePunchRepo{})

	_, err := svc.ImportPunches(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, imports.ErrEmptyFile)

	// Header only, no data rows.
	_, err = svc.ImportPunches(context.Background(), strings.NewReader("device_ip,pin,timestamp\n"))
	assert.ErrorIs(t, err, imports.ErrEmptyFile)
}

func TestImportPunches_RepoFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewImportService(&fakeEmployeeRepo{}, &fakePunchRepo{err: boom})

	_, err := svc.ImportPunches(context.Background(),
		strings.NewReader("device_ip,pin,timestamp\n10.0.0.5,101,2024-03-01T09:00:00Z\n"))
	assert.ErrorIs(t, err, boom)
}

func TestImportEmployees(t *testing.T) {
	file := strings.Join([]string{
		"pin,name",
		"101,Laura Mendez",
		"202,Pedro Ruiz",
		",Sin PIN",
	}, "\n")

	repo := &fakeEmployeeRepo{}
	svc := NewImportService(repo, &fakePunchRepo{})

	result, err := svc.ImportEmployees(context.Background(), strings.NewReader(file))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, repo.created, 2)
	assert.Equal(t, "Laura Mendez", repo.created[0].Name)
}

func TestImportEmployees_NoHeader(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewImportService(repo, &fakePunchRepo{})

	result, err := svc.ImportEmployees(context.Background(),
		strings.NewReader("101,Laura Mendez\n202,Pedro Ruiz\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
}

func TestImportEmployees_ExistingSkipped(t *testing.T) {
	// Repo reports one of two rows already present.
	repo := &fakeEmployeeRepo{inserted: 1}
	svc := NewImportService(repo, &fakePunchRepo{})

	result, err := svc.ImportEmployees(context.Background(),
		strings.NewReader("pin,name\n101,Laura Mendez\n202,Pedro Ruiz\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}
