package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/attendance"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

func (f *fakeEmployeeRepo) GetByPIN(ctx context.Context, pin string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.PIN == pin {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, pin string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Departments(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Positions(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CreateBatch(ctx context.Context, employees []employee.Employee) (int, error) {
	return 0, errors.New("not implemented")
}

type fakePunchRepo struct {
	punches []punch.Punch
	err     error
}

func (f *fakePunchRepo) GetRange(ctx context.Context, start, end string) ([]punch.Punch, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]punch.Punch, 0)
	for _, p := range f.punches {
		if p.Timestamp >= start && p.Timestamp < end {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) CreateBatch(ctx context.Context, punches []punch.Punch) (int, error) {
	return 0, errors.New("not implemented")
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func testRoster() []employee.Employee {
	return []employee.Employee{
		{
			PIN:              "101",
			Name:             "Laura Mendez",
			Department:       strPtr("Almacen"),
			Position:         strPtr("Almacenista"),
			ScheduledEntry:   strPtr("09:00:00"),
			ScheduledExit:    strPtr("18:00:00"),
			ToleranceMinutes: intPtr(15),
		},
		{
			PIN:            "202",
			Name:           "Pedro Ruiz",
			Department:     strPtr("Ventas"),
			ScheduledEntry: strPtr("08:00"),
			ScheduledExit:  strPtr("17:00"),
		},
	}
}

func TestMonthlyReport(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:10:00Z"},
			{PIN: "101", Timestamp: "2024-03-01T17:45:00Z"},
			{PIN: "202", Timestamp: "2024-03-01T08:30:00Z"},
			// Not on the roster: dropped from derivations.
			{PIN: "999", Timestamp: "2024-03-01T09:00:00Z"},
		}},
	)

	report, err := svc.MonthlyReport(context.Background(), attendanceRequest("2024-03"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03", report.Month)
	require.Len(t, report.Records, 2)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.OnTime)
	assert.Equal(t, 1, report.Summary.Late)

	// Same date: name ascending.
	assert.Equal(t, "Laura Mendez", report.Records[0].Name)
	assert.False(t, report.Records[0].IsLate) // 10 past with 15 tolerance
	require.NotNil(t, report.Records[0].ExitTime)
	assert.Equal(t, "17:45", *report.Records[0].ExitTime)

	assert.Equal(t, "Pedro Ruiz", report.Records[1].Name)
	assert.True(t, report.Records[1].IsLate) // 30 past with 0 tolerance

	require.Len(t, report.Departments, 2)
	assert.Equal(t, "Almacen", report.Departments[0].Key)
}

func TestMonthlyReport_PINFilter(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:00:00Z"},
			{PIN: "202", Timestamp: "2024-03-01T08:00:00Z"},
		}},
	)

	req := attendanceRequest("2024-03")
	req.PIN = "101"
	report, err := svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "101", report.Records[0].PIN)
}

func TestMonthlyReport_UnknownPIN(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{},
	)

	req := attendanceRequest("2024-03")
	req.PIN = "999"
	_, err := svc.MonthlyReport(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthlyReport_DepartmentFilter(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:00:00Z"},
			{PIN: "202", Timestamp: "2024-03-01T08:00:00Z"},
		}},
	)

	req := attendanceRequest("2024-03")
	req.Department = "Ventas"
	report, err := svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "202", report.Records[0].PIN)
}

func TestMonthlyReport_DayFilter(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:00:00Z"},
			{PIN: "101", Timestamp: "2024-03-04T09:00:00Z"},
		}},
	)

	req := attendanceRequest("2024-03")
	req.Day = "2024-03-04"
	report, err := svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "2024-03-04", report.Records[0].Date)
}

func TestMonthlyReport_EmptyMonth(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{},
	)

	report, err := svc.MonthlyReport(context.Background(), attendanceRequest("2024-03"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Summary.Total)
	assert.NotNil(t, report.Records)
	assert.Empty(t, report.Records)
	assert.Empty(t, report.Chronic)
}

func TestMonthlyReport_InvalidMonth(t *testing.T) {
	svc := NewAttendanceService(&fakeEmployeeRepo{}, &fakePunchRepo{})

	_, err := svc.MonthlyReport(context.Background(), attendanceRequest("03-2024"))
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestMonthlyReport_RepoFailure(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := NewAttendanceService(
		&fakeEmployeeRepo{err: boom},
		&fakePunchRepo{},
	).MonthlyReport(context.Background(), attendanceRequest("2024-03"))
	assert.ErrorIs(t, err, boom)

	_, err = NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{err: boom},
	).MonthlyReport(context.Background(), attendanceRequest("2024-03"))
	assert.ErrorIs(t, err, boom)
}

func TestChronicReport(t *testing.T) {
	var punches []punch.Punch
	for _, d := range []string{"01", "04", "05"} {
		punches = append(punches, punch.Punch{PIN: "202", Timestamp: "2024-03-" + d + "T09:30:00Z"})
	}
	punches = append(punches, punch.Punch{PIN: "101", Timestamp: "2024-03-01T09:05:00Z"})

	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: punches},
	)

	report, err := svc.ChronicReport(context.Background(), "2024-03")
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "202", report.Alerts[0].PIN)
	assert.Equal(t, 3, report.Alerts[0].LateDays)
}

func TestOverview(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:00:00Z"},
			{PIN: "101", Timestamp: "2024-03-01T17:00:00Z"},
			{PIN: "202", Timestamp: "2024-03-01T08:00:00Z"},
		}},
	)

	report, err := svc.Overview(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalPunches)
	assert.Equal(t, 2, report.TotalEmployees)
	assert.Equal(t, 2, report.TotalIn)
	assert.Equal(t, 1, report.TotalOut)
	assert.Equal(t, 4.0, report.AverageHours) // (8 + 0) / 2
}

func TestPunches(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{},
		&fakePunchRepo{punches: []punch.Punch{
			{PIN: "101", Timestamp: "2024-03-01T09:00:00Z"},
			{PIN: "999", Timestamp: "2024-03-xx 09:00"},
			{PIN: "101", Timestamp: "2024-04-01T09:00:00Z"},
		}},
	)

	resp, err := svc.Punches(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", resp.Month)
	// Unparsable rows in range still count; the April row does not.
	assert.Equal(t, 2, resp.Count)
}

func attendanceRequest(month string) attendance.MonthlyReportRequest {
	return attendance.MonthlyReportRequest{Month: month}
}
