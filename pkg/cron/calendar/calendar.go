// Package calendar decomposes instants into the calendar components the
// matching engine consumes, and binds an injectable clock to the engine so
// that "is this schedule due now?" stays testable with fixed instants.
package calendar

import (
	"time"

	"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
)

// Clock supplies the current instant. Production code uses SystemClock;
// tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// Fixed returns a Clock pinned to the given instant.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

// FromTime decomposes an instant into a matcher snapshot. Weekday maps to
// cron convention with 0 = Sunday, which matches time.Weekday directly.
func FromTime(t time.Time) matcher.Snapshot {
	return matcher.Snapshot{
		Minute:  t.Minute(),
		Hour:    t.Hour(),
		Day:     t.Day(),
		Month:   int(t.Month()),
		Weekday: int(t.Weekday()),
		Year:    t.Year(),
	}
}

// Matcher binds a clock to the matching engine.
type Matcher struct {
	clock Clock
}

// New creates a Matcher using the given clock. A nil clock defaults to
// SystemClock.
func New(clock Clock) *Matcher {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Matcher{clock: clock}
}

// DueNow reports whether the expression matches the clock's current
// instant.
func (m *Matcher) DueNow(expr string) (bool, error) {
	return matcher.ShouldRun(expr, FromTime(m.clock.Now()))
}

// DueAt reports whether the expression matches the given instant.
func (m *Matcher) DueAt(expr string, at time.Time) (bool, error) {
	return matcher.ShouldRun(expr, FromTime(at))
}
