package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/attendance"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/timeutil"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
	}
}

// resolveMonth applies the current-month default and validates the format.
func resolveMonth(month string) (string, error) {
	if month == "" {
		return timeutil.CurrentMonth(), nil
	}
	if !validator.IsValidMonth(month) {
		return "", validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}
	return month, nil
}

// fetchMonth loads the roster snapshot and the month's punch slice. The two
// reads are independent and run concurrently; if either fails the whole
// query fails with no partial result.
func (s *AttendanceServiceImpl) fetchMonth(ctx context.Context, month string) (map[string]employee.Schedule, []punch.Punch, error) {
	start, end, err := timeutil.MonthRange(month)
	if err != nil {
		return nil, nil, err
	}

	var (
		roster  map[string]employee.Schedule
		punches []punch.Punch
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.employeeRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		roster = make(map[string]employee.Schedule, len(rows))
		for _, row := range rows {
			roster[row.PIN] = row.Normalize()
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.punchRepo.GetRange(ctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to load punch log: %w", err)
		}
		punches = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return roster, punches, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyReport(ctx context.Context, req attendance.MonthlyReportRequest) (attendance.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyReport{}, err
	}
	month, err := resolveMonth(req.Month)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}

	roster, punches, err := s.fetchMonth(ctx, month)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}

	records := make([]attendance.DayRecord, 0)
	if req.PIN != "" {
		sched, ok := roster[req.PIN]
		if !ok {
			return attendance.MonthlyReport{}, employee.ErrEmployeeNotFound
		}
		records = append(records, deriveFor(punches, sched)...)
	} else {
		// Grouping per roster entry keeps punches from leaking between
		// employees and drops punches from PINs not on the roster.
		for _, pin := range sortedPINs(roster) {
			sched := roster[pin]
			if req.Department != "" && sched.Department != req.Department {
				continue
			}
			if req.Schedule != "" && sched.ScheduleWindow() != req.Schedule {
				continue
			}
			records = append(records, deriveFor(punches, sched)...)
		}
	}

	records = filterPeriod(records, month, req.Day)
	sortRecords(records)

	return attendance.MonthlyReport{
		Month:       month,
		Day:         req.Day,
		Summary:     Summarize(records),
		Departments: RollupByDepartment(records),
		Schedules:   RollupBySchedule(records),
		Chronic:     ChronicAlerts(records, month),
		Records:     records,
	}, nil
}

// ChronicReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ChronicReport(ctx context.Context, month string) (attendance.ChronicReport, error) {
	month, err := resolveMonth(month)
	if err != nil {
		return attendance.ChronicReport{}, err
	}

	roster, punches, err := s.fetchMonth(ctx, month)
	if err != nil {
		return attendance.ChronicReport{}, err
	}

	records := make([]attendance.DayRecord, 0)
	for _, pin := range sortedPINs(roster) {
		records = append(records, deriveFor(punches, roster[pin])...)
	}
	records = filterPeriod(records, month, "")

	return attendance.ChronicReport{
		Month:  month,
		Alerts: ChronicAlerts(records, month),
	}, nil
}

// Overview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Overview(ctx context.Context, month string) (attendance.OverviewReport, error) {
	month, err := resolveMonth(month)
	if err != nil {
		return attendance.OverviewReport{}, err
	}

	roster, punches, err := s.fetchMonth(ctx, month)
	if err != nil {
		return attendance.OverviewReport{}, err
	}

	events := ClassifySequence(punches, roster)
	stats := ActivityStats(events)

	report := attendance.OverviewReport{
		Month:          month,
		TotalPunches:   len(punches),
		TotalEmployees: len(stats),
		Employees:      stats,
	}

	var hours float64
	for _, a := range stats {
		report.TotalIn += a.TotalIn
		report.TotalOut += a.TotalOut
		hours += a.WorkedHours
	}
	if len(stats) > 0 {
		report.AverageHours = math.Round(hours/float64(len(stats))*10) / 10
	}
	return report, nil
}

// Punches implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Punches(ctx context.Context, month string) (attendance.PunchLogResponse, error) {
	month, err := resolveMonth(month)
	if err != nil {
		return attendance.PunchLogResponse{}, err
	}

	start, end, err := timeutil.MonthRange(month)
	if err != nil {
		return attendance.PunchLogResponse{}, err
	}

	rows, err := s.punchRepo.GetRange(ctx, start, end)
	if err != nil {
		return attendance.PunchLogResponse{}, fmt.Errorf("failed to load punch log: %w", err)
	}
	if rows == nil {
		rows = []punch.Punch{}
	}

	return attendance.PunchLogResponse{
		Month:   month,
		Count:   len(rows),
		Punches: rows,
	}, nil
}

func deriveFor(punches []punch.Punch, sched employee.Schedule) []attendance.DayRecord {
	groups := GroupByDay(punches, sched.PIN)
	records := make([]attendance.DayRecord, 0, len(groups))
	for _, stamps := range groups {
		records = append(records, DeriveDayRecord(stamps, sched))
	}
	return records
}

func filterPeriod(records []attendance.DayRecord, month, day string) []attendance.DayRecord {
	out := make([]attendance.DayRecord, 0, len(records))
	for _, r := range records {
		if !timeutil.InMonth(r.Date, month) {
			continue
		}
		if day != "" && r.Date != day {
			continue
		}
		out = append(out, r)
	}
	return out
}

// sortRecords orders newest day first, then name, the way the calendar
// view lists them.
func sortRecords(records []attendance.DayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].Name < records[j].Name
	})
}

func sortedPINs(roster map[string]employee.Schedule) []string {
	pins := make([]string, 0, len(roster))
	for pin := range roster {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	return pins
}
