package field

import (
	"testing"

	"github.com/vnykmshr/cronmatch/internal/testutil"
	cmerrors "github.com/vnykmshr/cronmatch/pkg/common/errors"
)

func TestExpand_Literal(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		bounds Bounds
		want   []int
	}{
		{"in bounds", "30", Minute, []int{30}},
		{"lower bound", "0", Minute, []int{0}},
		{"upper bound", "59", Minute, []int{59}},
		{"out of bounds high", "99", Minute, []int{}},
		{"out of bounds low", "0", Day, []int{}},
		{"year literal", "2024", Year, []int{2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.expr, tt.bounds)
			testutil.AssertNoError(t, err)
			testutil.AssertInts(t, got, tt.want)
		})
	}
}

func TestExpand_Wildcard(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
	}{
		{"minute", Minute},
		{"hour", Hour},
		{"day", Day},
		{"month", Month},
		{"weekday", Weekday},
		{"year", Year},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand("*", tt.bounds)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(got), tt.bounds.Upper-tt.bounds.Lower+1)
			for i, v := range got {
				testutil.AssertEqual(t, v, tt.bounds.Lower+i)
			}
		})
	}
}

func TestExpand_Range(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		bounds Bounds
		want   []int
	}{
		{"simple", "9-17", Hour, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}},
		{"single value", "5-5", Minute, []int{5}},
		{"reversed yields empty", "10-5", Minute, []int{}},
		{"endpoint out of bounds drops range", "50-70", Minute, []int{}},
		{"both out of bounds", "90-99", Minute, []int{}},
		{"weekday span", "1-5", Weekday, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.expr, tt.bounds)
			testutil.AssertNoError(t, err)
			testutil.AssertInts(t, got, tt.want)
		})
	}
}

func TestExpand_Step(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		bounds Bounds
		want   []int
	}{
		{"wildcard base", "*/15", Minute, []int{0, 15, 30, 45}},
		{"range base anchors at minimum", "3-59/15", Minute, []int{3, 18, 33, 48}},
		{"hour steps", "*/6", Hour, []int{0, 6, 12, 18}},
		{"increment one keeps base", "10-13/1", Hour, []int{10, 11, 12, 13}},
		{"increment larger than span", "1-5/10", Minute, []int{1}},
		{"zero increment yields empty", "*/0", Minute, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.expr, tt.bounds)
			testutil.AssertNoError(t, err)
			testutil.AssertInts(t, got, tt.want)
		})
	}
}

func TestExpand_List(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		bounds Bounds
		want   []int
	}{
		{"plain list", "1,5,20", Minute, []int{1, 5, 20}},
		{"deduplicated", "5,5,5", Minute, []int{5}},
		{"sorted ascending", "30,10,20", Minute, []int{10, 20, 30}},
		{"mixed terms compose", "1-5,10,*/15", Minute, []int{0, 1, 2, 3, 4, 5, 10, 15, 30, 45}},
		{"list with garbage term", "5,banana,10", Minute, []int{5, 10}},
		{"overlapping terms deduplicate", "0-6,*/3", Hour, []int{0, 1, 2, 3, 4, 5, 6, 9, 12, 15, 18, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.expr, tt.bounds)
			testutil.AssertNoError(t, err)
			testutil.AssertInts(t, got, tt.want)
		})
	}
}

// List expansion must equal the union of expanding each sub-term alone.
func TestExpand_ListIsUnion(t *testing.T) {
	whole, err := Expand("2-6,*/20", Minute)
	testutil.AssertNoError(t, err)

	left, err := Expand("2-6", Minute)
	testutil.AssertNoError(t, err)
	right, err := Expand("*/20", Minute)
	testutil.AssertNoError(t, err)

	union := make(map[int]struct{})
	for _, v := range left {
		union[v] = struct{}{}
	}
	for _, v := range right {
		union[v] = struct{}{}
	}

	testutil.AssertEqual(t, len(whole), len(union))
	for _, v := range whole {
		if _, ok := union[v]; !ok {
			t.Errorf("value %d missing from union of sub-terms", v)
		}
	}
}

func TestExpand_InvalidSyntax(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty string", ""},
		{"garbage", "banana"},
		{"double wildcard", "**"},
		{"three digit range", "1-100"},
		{"negative number", "-5"},
		{"trailing slash", "5/"},
		{"question mark", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.expr, Minute)
			testutil.AssertNoError(t, err)
			testutil.AssertInts(t, got, []int{})
		})
	}
}

func TestExpand_InvalidBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
	}{
		{"equal", Bounds{Lower: 5, Upper: 5}},
		{"inverted", Bounds{Lower: 10, Upper: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand("*", tt.bounds)
			testutil.AssertError(t, err)
			testutil.AssertErrorIs(t, err, cmerrors.ErrInvalidBounds)
		})
	}
}

// Expansion output must be strictly ascending with no duplicates for any
// syntactic form.
func TestExpand_OutputInvariants(t *testing.T) {
	exprs := []string{"*", "5", "9-17", "*/7", "3-59/15", "30,10,10,20", "1-5,4-8,*/25"}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			got, err := Expand(expr, Minute)
			testutil.AssertNoError(t, err)
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Fatalf("output not strictly ascending at %d: %v", i, got)
				}
			}
		})
	}
}

func TestContains(t *testing.T) {
	set := []int{3, 18, 33, 48}

	for _, v := range set {
		if !Contains(set, v) {
			t.Errorf("Contains(%v, %d) = false, want true", set, v)
		}
	}
	for _, v := range []int{0, 4, 49, 100} {
		if Contains(set, v) {
			t.Errorf("Contains(%v, %d) = true, want false", set, v)
		}
	}
	if Contains(nil, 3) {
		t.Error("Contains(nil, 3) = true, want false")
	}
}
