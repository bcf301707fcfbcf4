// Package schedule adapts matcher expressions to the robfig cron.Schedule
// interface, so expressions evaluated by this engine can drive any
// robfig-based scheduler.
package schedule

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/cronmatch/pkg/common/validation"
	"github.com/vnykmshr/cronmatch/pkg/cron/field"
	"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
)

// horizon is the first instant past the supported year range.
var horizon = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

// Schedule computes activation times for a matcher expression. It
// implements the robfig cron.Schedule interface.
//
// The expression's field sets are expanded once at Parse time; the
// matching engine itself stays recompute-per-call for ShouldRun, but a
// schedule is a long-lived value and re-expanding on every Next call
// would be waste.
type Schedule struct {
	expr    string
	minute  []int
	hour    []int
	day     []int
	month   []int
	weekday []int
	year    []int
}

var _ cron.Schedule = (*Schedule)(nil)

// Parse strictly validates the expression and returns a Schedule for it.
// Five-field expressions place no restriction on the year.
func Parse(expr string) (*Schedule, error) {
	if err := validation.ValidateNotEmpty("schedule", "expression", expr); err != nil {
		return nil, err
	}
	if err := matcher.Validate(expr); err != nil {
		return nil, err
	}

	tokens := strings.Fields(expr)
	if len(tokens) == 5 {
		tokens = append(tokens, "*")
	}

	sets := make([][]int, len(tokens))
	for i, token := range tokens {
		set, err := matcher.ExpandField(i, token)
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}

	return &Schedule{
		expr:    expr,
		minute:  sets[0],
		hour:    sets[1],
		day:     sets[2],
		month:   sets[3],
		weekday: sets[4],
		year:    sets[5],
	}, nil
}

// Expression returns the raw expression the schedule was parsed from.
func (s *Schedule) Expression() string {
	return s.expr
}

// Next returns the first activation strictly after t, or the zero time if
// none exists before the end of the supported year range (2099). It scans
// day by day, then picks the earliest matching hour and minute, so sparse
// schedules stay cheap.
func (s *Schedule) Next(t time.Time) time.Time {
	t = t.Truncate(time.Minute).Add(time.Minute)
	loc := t.Location()

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	// Minutes already past on the first candidate day.
	from := t.Hour()*60 + t.Minute()

	for day.Before(horizon) {
		if s.dayMatches(day) {
			for _, h := range s.hour {
				for _, m := range s.minute {
					if h*60+m >= from {
						return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
					}
				}
			}
		}
		day = day.AddDate(0, 0, 1)
		from = 0
	}
	return time.Time{}
}

func (s *Schedule) dayMatches(day time.Time) bool {
	return field.Contains(s.year, day.Year()) &&
		field.Contains(s.month, int(day.Month())) &&
		field.Contains(s.day, day.Day()) &&
		field.Contains(s.weekday, int(day.Weekday()))
}
