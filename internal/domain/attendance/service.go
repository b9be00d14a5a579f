package attendance

import "context"

// AttendanceService defines the report queries built on the derivation
// engine. Every call re-derives from the current punch log and roster
// snapshot; there is no cached state.
type AttendanceService interface {
	// MonthlyReport derives day records for a month (optionally narrowed to
	// one day, one employee, a department or a schedule window) and returns
	// them with summary counts, rollups and chronic-lateness alerts.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ChronicReport surfaces employees with ChronicThreshold or more late
	// days in the given month, sorted by late-day count descending.
	ChronicReport(ctx context.Context, month string) (ChronicReport, error)

	// Overview classifies the month's raw punches into in/out events and
	// tallies per-employee activity.
	Overview(ctx context.Context, month string) (OverviewReport, error)

	// Punches returns the raw month slice of the punch log.
	Punches(ctx context.Context, month string) (PunchLogResponse, error)
}
