// Package cronmatch provides cron schedule expression expansion and time
// matching for Go applications.
//
// Schedule Matching (pkg/cron):
//   - field: expand one cron field into its concrete integer value set
//   - matcher: decide whether a 5 or 6 field expression matches a calendar snapshot
//   - calendar: decompose instants and inject clocks for testable "due now?" checks
//   - schedule: robfig-compatible Schedule adapter with Next activation times
//
// Observability (pkg/metrics):
//   - Prometheus counters and histograms around the pure matching engine
//
// Example usage:
//
//	import (
//		"github.com/vnykmshr/cronmatch/pkg/cron/calendar"
//		"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
//	)
//
//	at := matcher.Snapshot{Minute: 30, Hour: 10, Day: 15, Month: 6, Weekday: 3, Year: 2024}
//	ok, _ := matcher.ShouldRun("*/15 9-17 * * 1-5", at) // true
//
//	m := calendar.New(nil) // system clock
//	due, _ := m.DueNow("0 9 * * 1-5")
//
// The engine is purely functional: no shared state, no I/O, safe for
// concurrent use without synchronization.
package cronmatch
