package matcher

import (
	"fmt"
	"strconv"
	"strings"

	cmerrors "github.com/vnykmshr/cronmatch/pkg/common/errors"
	"github.com/vnykmshr/cronmatch/pkg/cron/field"
)

// Snapshot holds the decomposed calendar components of a single instant.
// Weekday follows cron convention: 0 = Sunday. Hour is 24-hour form.
type Snapshot struct {
	Minute  int
	Hour    int
	Day     int
	Month   int
	Weekday int
	Year    int
}

// FieldError reports a bounds invariant failure for one named field.
// The bounds table is fixed, so this only fires on internal
// misconfiguration, never on user input.
type FieldError struct {
	Field string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid segment for field %s", e.Field)
}

// Unwrap allows errors.Is(err, ErrInvalidFieldSegment) to match.
func (e *FieldError) Unwrap() error {
	return cmerrors.ErrInvalidFieldSegment
}

// fieldOrder fixes both the positional meaning of expression tokens and
// the evaluation order of ShouldRun. The order is an observable contract:
// short-circuiting guarantees only fields up to the first mismatch were
// evaluated.
var fieldOrder = [6]struct {
	name   string
	bounds field.Bounds
}{
	{"minute", field.Minute},
	{"hour", field.Hour},
	{"day-of-month", field.Day},
	{"month", field.Month},
	{"day-of-week", field.Weekday},
	{"year", field.Year},
}

// FieldNames returns the positional field names in evaluation order.
func FieldNames() []string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = f.name
	}
	return names
}

// ShouldRun reports whether the schedule expression matches the snapshot.
// The expression must split into 5 or 6 whitespace-separated fields; with
// 5 fields the year is taken from the snapshot itself, so it always
// matches. Evaluation proceeds minute, hour, day-of-month, month,
// day-of-week, year and stops at the first non-matching field.
func ShouldRun(expr string, at Snapshot) (bool, error) {
	return shouldRun(expr, at, nil)
}

// shouldRun carries an optional per-field observer used by tests to
// verify evaluation order and short-circuiting.
func shouldRun(expr string, at Snapshot, observe func(name string)) (bool, error) {
	tokens, err := splitFields(expr)
	if err != nil {
		return false, err
	}
	if len(tokens) == 5 {
		tokens = append(tokens, strconv.Itoa(at.Year))
	}

	values := [6]int{at.Minute, at.Hour, at.Day, at.Month, at.Weekday, at.Year}

	for i, f := range fieldOrder {
		if observe != nil {
			observe(f.name)
		}
		set, err := field.Expand(tokens[i], f.bounds)
		if err != nil {
			return false, &FieldError{Field: f.name}
		}
		if !field.Contains(set, values[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Validate strictly checks an expression without evaluating it against a
// time: the field count must be right and every field must expand to at
// least one value. This is the opt-in strict layer on top of ShouldRun's
// leniency toward unparseable fields.
func Validate(expr string) error {
	tokens, err := splitFields(expr)
	if err != nil {
		return err
	}

	for i, token := range tokens {
		f := fieldOrder[i]
		set, err := field.Expand(token, f.bounds)
		if err != nil {
			return &FieldError{Field: f.name}
		}
		if len(set) == 0 {
			return cmerrors.NewValidationError("matcher", f.name, token, "expands to no values").
				WithHint("check the field syntax against the cron grammar")
		}
	}
	return nil
}

// ExpandField expands the i-th positional field token against its fixed
// bounds. Position follows FieldNames order.
func ExpandField(i int, token string) ([]int, error) {
	if i < 0 || i >= len(fieldOrder) {
		return nil, fmt.Errorf("field position %d out of range", i)
	}
	return field.Expand(token, fieldOrder[i].bounds)
}

func splitFields(expr string) ([]string, error) {
	tokens := strings.Fields(expr)
	if len(tokens) != 5 && len(tokens) != 6 {
		return nil, fmt.Errorf("%w: got %d fields, want 5 or 6", cmerrors.ErrMalformedExpression, len(tokens))
	}
	return tokens, nil
}
