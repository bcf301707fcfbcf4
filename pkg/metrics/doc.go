// Package metrics provides Prometheus instrumentation for cronmatch.
//
// The matching engine itself stays a pure decision function; this package
// wraps it with counters and histograms for callers that want visibility
// into evaluation volume, outcomes, and latency:
//
//	m := metrics.NewInstrumentedMatcher(nil) // default registry
//	ok, err := m.ShouldRun("*/15 * * * *", snapshot)
//
// Metrics follow the cronmatch namespace with a matcher subsystem, for
// example cronmatch_matcher_evaluations_total{result="match"}.
package metrics
