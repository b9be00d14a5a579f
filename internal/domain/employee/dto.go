package employee

import (
	"regexp"

	"github.com/mariana-dist/attendance-backend-go/internal/pkg/timeutil"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// UpdateEmployeeRequest carries a partial roster update. Only the fields in
// this allow-list are mutable; nil means "leave unchanged".
type UpdateEmployeeRequest struct {
	Name             *string `json:"name"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	LegalEntity      *string `json:"legal_entity"`
	ScheduledEntry   *string `json:"scheduled_entry"`
	ScheduledExit    *string `json:"scheduled_exit"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	MealMinutes      *int    `json:"meal_minutes"`
	Active           *bool   `json:"active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be blank",
		})
	}

	if r.ScheduledEntry != nil && !clockPattern.MatchString(*r.ScheduledEntry) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_entry",
			Message: "scheduled_entry must be HH:MM",
		})
	}

	if r.ScheduledExit != nil && !clockPattern.MatchString(*r.ScheduledExit) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_exit",
			Message: "scheduled_exit must be HH:MM",
		})
	}

	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must not be negative",
		})
	}

	if r.MealMinutes != nil && *r.MealMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_minutes",
			Message: "meal_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Empty reports whether the request changes nothing.
func (r *UpdateEmployeeRequest) Empty() bool {
	return r.Name == nil && r.Position == nil && r.Department == nil &&
		r.LegalEntity == nil && r.ScheduledEntry == nil && r.ScheduledExit == nil &&
		r.ToleranceMinutes == nil && r.MealMinutes == nil && r.Active == nil
}

type EmployeeResponse struct {
	PIN              string  `json:"pin"`
	Name             string  `json:"name"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	LegalEntity      *string `json:"legal_entity"`
	ScheduledEntry   *string `json:"scheduled_entry"`
	ScheduledExit    *string `json:"scheduled_exit"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	MealMinutes      *int    `json:"meal_minutes"`
	Active           *bool   `json:"active"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// MapEmployeeToResponse converts a roster entity to its API shape, trimming
// schedule times to HH:MM the way the roster pages display them.
func MapEmployeeToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		PIN:              e.PIN,
		Name:             e.Name,
		Position:         e.Position,
		Department:       e.Department,
		LegalEntity:      e.LegalEntity,
		ScheduledEntry:   hhmmPtr(e.ScheduledEntry),
		ScheduledExit:    hhmmPtr(e.ScheduledExit),
		ToleranceMinutes: e.ToleranceMinutes,
		MealMinutes:      e.MealMinutes,
		Active:           e.Active,
	}
}

func hhmmPtr(t *string) *string {
	if t == nil {
		return nil
	}
	v := timeutil.HHMM(*t)
	return &v
}
