// Package field expands a single cron field expression into the set of
// integer values it denotes.
//
// Each positional component of a cron expression (minute, hour,
// day-of-month, month, day-of-week, year) carries a fixed inclusive bounds
// pair. Expand resolves the field's textual syntax against those bounds and
// returns the complete, deduplicated, ascending set of matching values:
//
//	values, err := field.Expand("*/15", field.Minute)
//	// values == []int{0, 15, 30, 45}
//
// Supported syntax, resolved in priority order:
//
//   - literal number: "30"
//   - wildcard: "*"
//   - comma list of sub-expressions: "1-5,10,*/15"
//   - step increments: "3-59/15" (anchored at the minimum of the base range)
//   - ranges: "9-17"
//
// List sub-terms and step base ranges are themselves full field
// expressions, so the forms compose recursively. Unrecognized syntax,
// reversed ranges, and out-of-bounds values all degrade to an empty set
// rather than an error; callers wanting strict validation must check for an
// empty result. The only error condition is a bounds pair whose upper limit
// is not above its lower.
package field
