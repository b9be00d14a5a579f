package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ClockStamp is the lexical decomposition of a raw device timestamp: the
// calendar day and the wall-clock time as written, with no timezone math.
type ClockStamp struct {
	Date      string // "YYYY-MM-DD"
	TimeOfDay string // "HH:MM", may be empty
}

var (
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	fullDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern     = regexp.MustCompile(`\d{2}:\d{2}`)
)

// ParseTimestamp extracts the calendar date and wall-clock time from a raw
// punch timestamp. Accepts "2026-01-07T16:44:45Z", "2026-01-07 16:44:45",
// or any string with an embedded YYYY-MM-DD and HH:MM. The displayed clock
// time IS the time used for comparisons; device timestamps are assumed to
// already be facility local time.
//
// Returns ok=false when no date can be found; such punches are unusable and
// must be excluded by the caller.
func ParseTimestamp(raw string) (ClockStamp, bool) {
	var stamp ClockStamp

	if len(raw) >= 10 && fullDatePattern.MatchString(raw[:10]) {
		stamp.Date = raw[:10]
	} else {
		stamp.Date = datePattern.FindString(raw)
	}
	if stamp.Date == "" {
		return ClockStamp{}, false
	}

	stamp.TimeOfDay = timePattern.FindString(raw)
	return stamp, true
}

// ToMinutes converts an "HH:MM" clock string to minutes after midnight.
// Missing or non-numeric components count as zero.
func ToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 3)
	var hours, minutes int
	if len(parts) > 0 {
		hours, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// HHMM truncates a "HH:MM[:SS]" clock string to "HH:MM". Roster rows store
// schedule times either way.
func HHMM(t string) string {
	if len(t) < 5 {
		return t
	}
	return t[:5]
}

// CurrentMonth returns the current month as "YYYY-MM".
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// MonthRange returns the half-open [start, end) date-string range covering a
// "YYYY-MM" month. The bounds are bare dates so they compare lexically
// against any stored timestamp format.
func MonthRange(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t.Format("2006-01-02"), t.AddDate(0, 1, 0).Format("2006-01-02"), nil
}

// InMonth reports whether a "YYYY-MM-DD" date falls in a "YYYY-MM" month.
// Plain prefix matching, per the derivation rules.
func InMonth(date, month string) bool {
	return strings.HasPrefix(date, month)
}

// NaiveTime converts a parsed stamp to a time.Time carrying the wall-clock
// values as-is. Used only to measure spans between punches, never for zone
// conversion.
func NaiveTime(s ClockStamp) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(ToMinutes(s.TimeOfDay)) * time.Minute), nil
}
