package field

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	cmerrors "github.com/vnykmshr/cronmatch/pkg/common/errors"
)

// Bounds is the inclusive range of values legal for one cron field kind.
type Bounds struct {
	Lower int
	Upper int
}

// Fixed bounds per field kind. These are constants of the cron dialect,
// never user-supplied.
var (
	Minute  = Bounds{Lower: 0, Upper: 59}
	Hour    = Bounds{Lower: 0, Upper: 23}
	Day     = Bounds{Lower: 1, Upper: 31}
	Month   = Bounds{Lower: 1, Upper: 12}
	Weekday = Bounds{Lower: 0, Upper: 6} // 0 = Sunday
	Year    = Bounds{Lower: 1970, Upper: 2099}
)

// termKind classifies a field expression into the closed grammar:
// literal | wildcard | list | step | range | invalid.
type termKind int

const (
	termInvalid termKind = iota
	termLiteral
	termWildcard
	termList
	termStep
	termRange
)

var (
	stepPattern  = regexp.MustCompile(`^[0-9,*-]+/[0-9,-]+$`)
	rangePattern = regexp.MustCompile(`^[0-9]{1,2}-[0-9]{1,2}$`)
)

// classify resolves the first matching grammar category for expr.
// An expression belongs to exactly one category.
func classify(expr string) termKind {
	switch {
	case isInteger(expr):
		return termLiteral
	case expr == "*":
		return termWildcard
	case strings.Contains(expr, ","):
		return termList
	case stepPattern.MatchString(expr):
		return termStep
	case rangePattern.MatchString(expr):
		return termRange
	default:
		return termInvalid
	}
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Expand resolves a field expression into the deduplicated, ascending set
// of integers it denotes within b. Unrecognized syntax and out-of-bounds
// values produce an empty set, not an error; the only failure mode is an
// invalid bounds pair.
func Expand(expr string, b Bounds) ([]int, error) {
	if b.Upper <= b.Lower {
		return nil, fmt.Errorf("%w: [%d, %d]", cmerrors.ErrInvalidBounds, b.Lower, b.Upper)
	}
	return normalize(expandTerm(strings.TrimSpace(expr), b), b), nil
}

// expandTerm is the recursive grammar walk. It may return duplicates and
// values outside b; normalize cleans up after the whole walk finishes.
func expandTerm(expr string, b Bounds) []int {
	switch classify(expr) {
	case termLiteral:
		n, err := strconv.Atoi(expr)
		if err != nil {
			return nil
		}
		return []int{n}

	case termWildcard:
		values := make([]int, 0, b.Upper-b.Lower+1)
		for v := b.Lower; v <= b.Upper; v++ {
			values = append(values, v)
		}
		return values

	case termList:
		var values []int
		for _, part := range strings.Split(expr, ",") {
			values = append(values, expandTerm(part, b)...)
		}
		return values

	case termStep:
		return expandStep(expr, b)

	case termRange:
		return expandRange(expr, b)

	default:
		return nil
	}
}

// expandStep handles "A/B": expand the base term A, then keep only values
// whose offset from the base range minimum is an exact multiple of B.
func expandStep(expr string, b Bounds) []int {
	slash := strings.Index(expr, "/")
	base, incrText := expr[:slash], expr[slash+1:]

	incr, err := strconv.Atoi(incrText)
	if err != nil || incr <= 0 {
		return nil
	}

	candidates := expandTerm(base, b)
	if len(candidates) == 0 {
		return nil
	}

	anchor := candidates[0]
	for _, v := range candidates[1:] {
		if v < anchor {
			anchor = v
		}
	}

	var values []int
	for _, v := range candidates {
		if (v-anchor)%incr == 0 {
			values = append(values, v)
		}
	}
	return values
}

// expandRange handles "A-B". Both endpoints must lie within bounds or the
// whole range is dropped. A reversed range (A > B) yields no values, which
// is an accepted edge case rather than an error.
func expandRange(expr string, b Bounds) []int {
	dash := strings.Index(expr, "-")
	from, err := strconv.Atoi(expr[:dash])
	if err != nil {
		return nil
	}
	to, err := strconv.Atoi(expr[dash+1:])
	if err != nil {
		return nil
	}
	if from < b.Lower || from > b.Upper || to < b.Lower || to > b.Upper {
		return nil
	}

	var values []int
	for v := from; v <= to; v++ {
		values = append(values, v)
	}
	return values
}

// normalize applies the final bounds filter, deduplicates, and sorts.
func normalize(raw []int, b Bounds) []int {
	seen := make(map[int]struct{}, len(raw))
	values := make([]int, 0, len(raw))
	for _, v := range raw {
		if v < b.Lower || v > b.Upper {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Contains reports whether v is a member of an ascending expanded set.
func Contains(set []int, v int) bool {
	i := sort.SearchInts(set, v)
	return i < len(set) && set[i] == v
}
