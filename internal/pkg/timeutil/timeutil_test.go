package timeutil

import (
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		raw      string
		wantDate string
		wantTime string
		wantOK   bool
	}{
		{"2026-01-07T16:44:45Z", "2026-01-07", "16:44", true},
		{"2026-01-07 16:44:45", "2026-01-07", "16:44", true},
		{"2024-03-01T09:14:00", "2024-03-01", "09:14", true},
		{"checada 2024-03-01 08:55 turno 1", "2024-03-01", "08:55", true},
		{"2024-03-01", "2024-03-01", "", true},
		{"garbage", "", "", false},
		{"", "", "", false},
		{"07/01/2026 16:44", "", "", false},
	}
	for _, c := range cases {
		got, ok := ParseTimestamp(c.raw)
		if ok != c.wantOK {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", c.raw, ok, c.wantOK)
			continue
		}
		if got.Date != c.wantDate || got.TimeOfDay != c.wantTime {
			t.Errorf("ParseTimestamp(%q) = (%q, %q), want (%q, %q)",
				c.raw, got.Date, got.TimeOfDay, c.wantDate, c.wantTime)
		}
	}
}

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"09:00", 540},
		{"00:00", 0},
		{"23:59", 1439},
		{"09:14", 554},
		{"9", 540},
		{"", 0},
		{"xx:yy", 0},
		{"10:30:45", 630},
	}
	for _, c := range cases {
		if got := ToMinutes(c.input); got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestHHMM(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00:00", "09:00"},
		{"09:00", "09:00"},
		{"", ""},
		{"9:0", "9:0"},
	}
	for _, c := range cases {
		if got := HHMM(c.input); got != c.want {
			t.Errorf("HHMM(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2024-03")
	if err != nil {
		t.Fatalf("MonthRange returned error: %v", err)
	}
	if start != "2024-03-01" || end != "2024-04-01" {
		t.Errorf("MonthRange(2024-03) = (%q, %q)", start, end)
	}

	start, end, err = MonthRange("2024-12")
	if err != nil {
		t.Fatalf("MonthRange returned error: %v", err)
	}
	if start != "2024-12-01" || end != "2025-01-01" {
		t.Errorf("MonthRange(2024-12) = (%q, %q)", start, end)
	}

	if _, _, err := MonthRange("2024-3"); err == nil {
		t.Error("MonthRange(2024-3) should fail")
	}
	if _, _, err := MonthRange("nope"); err == nil {
		t.Error("MonthRange(nope) should fail")
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2024-03-15", "2024-03") {
		t.Error("2024-03-15 should be in 2024-03")
	}
	if InMonth("2024-04-01", "2024-03") {
		t.Error("2024-04-01 should not be in 2024-03")
	}
}

func TestNaiveTime(t *testing.T) {
	a, err := NaiveTime(ClockStamp{Date: "2024-03-01", TimeOfDay: "08:55"})
	if err != nil {
		t.Fatalf("NaiveTime returned error: %v", err)
	}
	b, err := NaiveTime(ClockStamp{Date: "2024-03-01", TimeOfDay: "17:40"})
	if err != nil {
		t.Fatalf("NaiveTime returned error: %v", err)
	}
	if got := b.Sub(a).Minutes(); got != 525 {
		t.Errorf("span = %v minutes, want 525", got)
	}
}
