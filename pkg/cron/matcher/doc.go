// Package matcher decides whether a cron schedule expression matches a
// point in time.
//
// A schedule expression carries 5 or 6 whitespace-separated fields in
// fixed order: minute, hour, day-of-month, month, day-of-week, and an
// optional year. The point in time is a Snapshot of decomposed calendar
// components, so the engine never reads the wall clock itself:
//
//	at := matcher.Snapshot{Minute: 30, Hour: 10, Day: 15, Month: 6, Weekday: 3, Year: 2024}
//	ok, err := matcher.ShouldRun("*/15 9-17 * * 1-5", at)
//	// ok == true
//
// Fields are evaluated in expression order and the first non-matching
// field short-circuits the result to false. A field whose syntax cannot be
// parsed expands to an empty value set and therefore never matches;
// ShouldRun only returns an error for a wrong field count or a bounds
// invariant failure. Validate offers the stricter opt-in check that every
// field expands to at least one value.
//
// Every call is independent and referentially transparent, so the package
// is safe for concurrent use without synchronization.
package matcher
