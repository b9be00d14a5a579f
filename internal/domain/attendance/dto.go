package attendance

import (
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DERIVED RECORDS
// ========================================

// DayRecord is the derived attendance record for one employee on one
// calendar day: first arrival, lateness, detected exit and anomaly flags.
// Recomputed on every query; never persisted.
type DayRecord struct {
	PIN        string `json:"pin"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Date       string `json:"date"`

	Entry     string `json:"entry"`      // raw timestamp of the earliest punch
	EntryTime string `json:"entry_time"` // "HH:MM"

	Exit     *string `json:"exit,omitempty"`
	ExitTime *string `json:"exit_time,omitempty"`

	ScheduledEntry string `json:"scheduled_entry"`
	ScheduledExit  string `json:"scheduled_exit"`

	// DiffMinutes is entry time-of-day minus scheduled entry. Negative
	// means the employee arrived early.
	DiffMinutes int  `json:"diff_minutes"`
	IsLate      bool `json:"is_late"`

	// HasMultiplePunches flags days with more than two punches. Independent
	// of whether an exit was detected.
	HasMultiplePunches bool `json:"has_multiple_punches"`
	PunchCount         int  `json:"punch_count"`
}

// PeriodSummary aggregates day records over a reporting period.
type PeriodSummary struct {
	Total  int `json:"total"`
	OnTime int `json:"on_time"`
	Late   int `json:"late"`
	Alerts int `json:"alerts"`
}

// GroupTally is an on-time/late split for one rollup key (a department or
// a schedule window). Feeds the bar-chart views.
type GroupTally struct {
	Key    string `json:"key"`
	OnTime int    `json:"on_time"`
	Late   int    `json:"late"`
}

// ChronicAlert flags an employee with three or more late days inside one
// calendar month.
type ChronicAlert struct {
	PIN      string `json:"pin"`
	Name     string `json:"name"`
	LateDays int    `json:"late_days"`
}

// ChronicThreshold is the late-day count at which an employee is surfaced.
const ChronicThreshold = 3

// ========================================
// REPORT REQUEST / RESPONSES
// ========================================

type MonthlyReportRequest struct {
	Month      string `json:"month"` // "YYYY-MM", defaults to current month
	Day        string `json:"day"`   // optional "YYYY-MM-DD" narrowing
	PIN        string `json:"pin"`   // optional single-employee view
	Department string `json:"department"`
	Schedule   string `json:"schedule"` // "HH:MM - HH:MM" window filter
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" && !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be YYYY-MM",
		})
	}

	if r.Day != "" {
		if _, ok := validator.IsValidDate(r.Day); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "day",
				Message: "day must be YYYY-MM-DD",
			})
		}
	}

	if r.PIN != "" && !validator.IsNumeric(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be numeric",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	Month       string         `json:"month"`
	Day         string         `json:"day,omitempty"`
	Summary     PeriodSummary  `json:"summary"`
	Departments []GroupTally   `json:"departments"`
	Schedules   []GroupTally   `json:"schedules"`
	Chronic     []ChronicAlert `json:"chronic"`
	Records     []DayRecord    `json:"records"`
}

type ChronicReport struct {
	Month  string         `json:"month"`
	Alerts []ChronicAlert `json:"alerts"`
}

// ========================================
// PUNCH SEQUENCE OVERVIEW
// ========================================

type PunchEventType string

const (
	PunchIn  PunchEventType = "in"
	PunchOut PunchEventType = "out"
)

// PunchEvent is one raw punch classified by in/out alternation: the first
// punch of the period for a PIN is always "in" and the direction flips on
// each subsequent punch.
type PunchEvent struct {
	PIN       string         `json:"pin"`
	Name      string         `json:"name"`
	Timestamp string         `json:"timestamp"`
	Type      PunchEventType `json:"type"`
}

// EmployeeActivity is the per-employee tally over classified punches.
type EmployeeActivity struct {
	PIN         string  `json:"pin"`
	Name        string  `json:"name"`
	TotalIn     int     `json:"total_in"`
	TotalOut    int     `json:"total_out"`
	WorkedHours float64 `json:"worked_hours"`
	LastIn      *string `json:"last_in,omitempty"`
	LastOut     *string `json:"last_out,omitempty"`
}

type OverviewReport struct {
	Month          string             `json:"month"`
	TotalPunches   int                `json:"total_punches"`
	TotalEmployees int                `json:"total_employees"`
	TotalIn        int                `json:"total_in"`
	TotalOut       int                `json:"total_out"`
	AverageHours   float64            `json:"average_hours"`
	Employees      []EmployeeActivity `json:"employees"`
}

// PunchLogResponse is the raw month slice of the punch log. Count includes
// rows whose timestamp the engine cannot parse; those rows are excluded
// from derivations but still count here.
type PunchLogResponse struct {
	Month   string        `json:"month"`
	Count   int           `json:"count"`
	Punches []punch.Punch `json:"punches"`
}
