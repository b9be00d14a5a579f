package employee

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mariana-dist/attendance-backend-go/internal/pkg/timeutil"
)

// Employee is a roster row keyed by the PIN the time clock device reports.
// Schedule fields are nullable; the derivation engine never sees them raw.
type Employee struct {
	PIN              string
	Name             string
	Position         *string
	Department       *string
	LegalEntity      *string
	ScheduledEntry   *string // "09:00" or "09:00:00"
	ScheduledExit    *string
	ToleranceMinutes *int
	ToleranceText    *string // legacy rosters stored "19 min" style text
	MealMinutes      *int
	Active           *bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Schedule is the normalized view the derivation engine consumes. Every
// field is defaulted so the engine never branches on absent values.
type Schedule struct {
	PIN              string
	Name             string
	Position         string
	Department       string
	LegalEntity      string
	ScheduledEntry   string // "HH:MM"
	ScheduledExit    string // "HH:MM"
	ToleranceMinutes int
	MealMinutes      int
	Active           bool
}

const (
	DefaultScheduledEntry = "09:00"
	DefaultScheduledExit  = "18:00"

	// LegacyToleranceMinutes is the fallback when tolerance arrives as free
	// text ("19 min") carrying no parsable number.
	LegacyToleranceMinutes = 19
)

// Normalize applies the roster defaults: placeholder name for blank rows,
// 09:00/18:00 schedule, zero tolerance when the structured column is null.
func (e Employee) Normalize() Schedule {
	s := Schedule{
		PIN:         e.PIN,
		Name:        strings.TrimSpace(e.Name),
		Position:    derefTrim(e.Position, "N/A"),
		Department:  derefTrim(e.Department, "N/A"),
		LegalEntity: derefTrim(e.LegalEntity, "N/A"),
	}
	if s.Name == "" {
		s.Name = "PIN " + e.PIN
	}

	s.ScheduledEntry = timeutil.HHMM(derefTrim(e.ScheduledEntry, ""))
	if s.ScheduledEntry == "" {
		s.ScheduledEntry = DefaultScheduledEntry
	}
	s.ScheduledExit = timeutil.HHMM(derefTrim(e.ScheduledExit, ""))
	if s.ScheduledExit == "" {
		s.ScheduledExit = DefaultScheduledExit
	}

	if e.ToleranceMinutes != nil {
		s.ToleranceMinutes = *e.ToleranceMinutes
	} else if text := derefTrim(e.ToleranceText, ""); text != "" {
		s.ToleranceMinutes = ParseToleranceText(text)
	}
	if e.MealMinutes != nil {
		s.MealMinutes = *e.MealMinutes
	}
	if e.Active != nil {
		s.Active = *e.Active
	}
	return s
}

// ScheduleWindow is the "entry - exit" tuple used for schedule rollups and
// filtering.
func (s Schedule) ScheduleWindow() string {
	return s.ScheduledEntry + " - " + s.ScheduledExit
}

var intPattern = regexp.MustCompile(`\d+`)

// ParseToleranceText extracts the first integer literal from a free-text
// tolerance such as "19 min". Legacy rosters stored tolerance this way;
// text with no number falls back to LegacyToleranceMinutes.
func ParseToleranceText(s string) int {
	if m := intPattern.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return LegacyToleranceMinutes
}

func derefTrim(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	if v := strings.TrimSpace(*p); v != "" {
		return v
	}
	return fallback
}
