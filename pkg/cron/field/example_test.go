package field_test

import (
	"fmt"

	"github.com/vnykmshr/cronmatch/pkg/cron/field"
)

// ExampleExpand demonstrates basic field expansion.
func ExampleExpand() {
	values, err := field.Expand("*/15", field.Minute)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(values)

	// Output:
	// [0 15 30 45]
}

// ExampleExpand_composed demonstrates how list, range, and step terms
// combine within one field.
func ExampleExpand_composed() {
	values, err := field.Expand("1-5,10,*/20", field.Minute)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(values)

	// Output:
	// [0 1 2 3 4 5 10 20 40]
}

// ExampleExpand_anchoredStep shows that step filtering is anchored at the
// minimum of the base range, not at the field's lower bound.
func ExampleExpand_anchoredStep() {
	values, err := field.Expand("3-59/15", field.Minute)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(values)

	// Output:
	// [3 18 33 48]
}
