package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/attendance"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/timeutil"
)

// exitGapMinutes is the minimum span between entry and a punch for that
// punch to count as the day's exit. Shorter gaps are lunch runs or repeated
// badge taps, not a checkout.
const exitGapMinutes = 60

// GroupByDay buckets one employee's punches by calendar day. Punches with a
// different PIN or an unparsable timestamp are dropped; identical
// timestamps are kept and count toward the multiple-punch anomaly.
func GroupByDay(punches []punch.Punch, pin string) map[string][]string {
	groups := make(map[string][]string)
	for _, p := range punches {
		if strings.TrimSpace(p.PIN) != pin {
			continue
		}
		stamp, ok := timeutil.ParseTimestamp(p.Timestamp)
		if !ok {
			continue
		}
		groups[stamp.Date] = append(groups[stamp.Date], p.Timestamp)
	}
	return groups
}

// DeriveDayRecord derives the attendance record for one employee-day.
// stamps must be non-empty; callers group first and never pass empty
// groups. Sorting is plain string sort, safe because every stamp shares the
// calendar day and carries zero-padded clock digits.
func DeriveDayRecord(stamps []string, sched employee.Schedule) attendance.DayRecord {
	sorted := append([]string(nil), stamps...)
	sort.Strings(sorted)

	entry := sorted[0]
	entryStamp, _ := timeutil.ParseTimestamp(entry)
	entryMinutes := timeutil.ToMinutes(entryStamp.TimeOfDay)
	diff := entryMinutes - timeutil.ToMinutes(sched.ScheduledEntry)

	rec := attendance.DayRecord{
		PIN:                sched.PIN,
		Name:               sched.Name,
		Position:           sched.Position,
		Department:         sched.Department,
		Date:               entryStamp.Date,
		Entry:              entry,
		EntryTime:          entryStamp.TimeOfDay,
		ScheduledEntry:     sched.ScheduledEntry,
		ScheduledExit:      sched.ScheduledExit,
		DiffMinutes:        diff,
		IsLate:             diff > sched.ToleranceMinutes,
		HasMultiplePunches: len(sorted) > 2,
		PunchCount:         len(sorted),
	}

	if len(sorted) >= 2 {
		last := sorted[len(sorted)-1]
		lastStamp, ok := timeutil.ParseTimestamp(last)
		if ok && timeutil.ToMinutes(lastStamp.TimeOfDay)-entryMinutes >= exitGapMinutes {
			exitTime := lastStamp.TimeOfDay
			rec.Exit = &last
			rec.ExitTime = &exitTime
		}
	}
	return rec
}

// Summarize folds day records into the period counters.
func Summarize(records []attendance.DayRecord) attendance.PeriodSummary {
	s := attendance.PeriodSummary{Total: len(records)}
	for _, r := range records {
		if r.IsLate {
			s.Late++
		} else {
			s.OnTime++
		}
		if r.HasMultiplePunches {
			s.Alerts++
		}
	}
	return s
}

// RollupByDepartment tallies on-time/late per department, keys sorted.
func RollupByDepartment(records []attendance.DayRecord) []attendance.GroupTally {
	return rollup(records, func(r attendance.DayRecord) string { return r.Department })
}

// RollupBySchedule tallies on-time/late per schedule window, keys sorted.
func RollupBySchedule(records []attendance.DayRecord) []attendance.GroupTally {
	return rollup(records, func(r attendance.DayRecord) string {
		return r.ScheduledEntry + " - " + r.ScheduledExit
	})
}

func rollup(records []attendance.DayRecord, key func(attendance.DayRecord) string) []attendance.GroupTally {
	tallies := make(map[string]*attendance.GroupTally)
	for _, r := range records {
		k := key(r)
		t, ok := tallies[k]
		if !ok {
			t = &attendance.GroupTally{Key: k}
			tallies[k] = t
		}
		if r.IsLate {
			t.Late++
		} else {
			t.OnTime++
		}
	}

	keys := make([]string, 0, len(tallies))
	for k := range tallies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]attendance.GroupTally, 0, len(keys))
	for _, k := range keys {
		out = append(out, *tallies[k])
	}
	return out
}

// ChronicAlerts surfaces employees with ChronicThreshold or more late days
// inside the given calendar month, sorted by late-day count descending,
// then name.
func ChronicAlerts(records []attendance.DayRecord, month string) []attendance.ChronicAlert {
	type tally struct {
		name string
		late int
	}
	byPIN := make(map[string]*tally)
	for _, r := range records {
		if !r.IsLate || !timeutil.InMonth(r.Date, month) {
			continue
		}
		t, ok := byPIN[r.PIN]
		if !ok {
			t = &tally{name: r.Name}
			byPIN[r.PIN] = t
		}
		t.late++
	}

	alerts := make([]attendance.ChronicAlert, 0)
	for pin, t := range byPIN {
		if t.late >= attendance.ChronicThreshold {
			alerts = append(alerts, attendance.ChronicAlert{PIN: pin, Name: t.name, LateDays: t.late})
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].LateDays != alerts[j].LateDays {
			return alerts[i].LateDays > alerts[j].LateDays
		}
		return alerts[i].Name < alerts[j].Name
	})
	return alerts
}

// ClassifySequence orders raw punches chronologically and alternates each
// employee's events between in and out, starting with in. Punches without a
// PIN or timestamp are dropped; unknown PINs keep their punches under a
// placeholder name.
func ClassifySequence(punches []punch.Punch, roster map[string]employee.Schedule) []attendance.PunchEvent {
	sorted := append([]punch.Punch(nil), punches...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	lastType := make(map[string]attendance.PunchEventType)
	events := make([]attendance.PunchEvent, 0, len(sorted))
	for _, p := range sorted {
		pin := strings.TrimSpace(p.PIN)
		if pin == "" || strings.TrimSpace(p.Timestamp) == "" {
			continue
		}

		current := attendance.PunchIn
		if lastType[pin] == attendance.PunchIn {
			current = attendance.PunchOut
		}

		name := "PIN " + pin
		if sched, ok := roster[pin]; ok {
			name = sched.Name
		}

		events = append(events, attendance.PunchEvent{
			PIN:       pin,
			Name:      name,
			Timestamp: p.Timestamp,
			Type:      current,
		})
		lastType[pin] = current
	}
	return events
}

// ActivityStats tallies classified events per employee. Worked hours
// accumulate over each in→out pair with naive wall-clock arithmetic.
// Busiest employees come first.
func ActivityStats(events []attendance.PunchEvent) []attendance.EmployeeActivity {
	byPIN := make(map[string]*attendance.EmployeeActivity)
	lastIn := make(map[string]time.Time)
	var order []string

	for _, ev := range events {
		a, ok := byPIN[ev.PIN]
		if !ok {
			a = &attendance.EmployeeActivity{PIN: ev.PIN, Name: ev.Name}
			byPIN[ev.PIN] = a
			order = append(order, ev.PIN)
		}

		ts := ev.Timestamp
		when, parsed := punchInstant(ev.Timestamp)

		if ev.Type == attendance.PunchIn {
			a.TotalIn++
			a.LastIn = &ts
			if parsed {
				lastIn[ev.PIN] = when
			}
		} else {
			a.TotalOut++
			a.LastOut = &ts
			if in, started := lastIn[ev.PIN]; started && parsed {
				a.WorkedHours += when.Sub(in).Hours()
			}
		}
	}

	out := make([]attendance.EmployeeActivity, 0, len(order))
	for _, pin := range order {
		out = append(out, *byPIN[pin])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WorkedHours > out[j].WorkedHours })
	return out
}

func punchInstant(raw string) (time.Time, bool) {
	stamp, ok := timeutil.ParseTimestamp(raw)
	if !ok {
		return time.Time{}, false
	}
	t, err := timeutil.NaiveTime(stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
