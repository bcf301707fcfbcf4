package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cmerrors "github.com/vnykmshr/cronmatch/pkg/common/errors"
	"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
)

// InstrumentedMatcher wraps the matching engine with Prometheus metrics.
// The wrapped calls behave identically to the matcher package; only
// observation is added.
type InstrumentedMatcher struct {
	registry *Registry
}

// NewInstrumentedMatcher creates an instrumented matcher reporting into
// the given registry. A nil registry defaults to DefaultRegistry.
func NewInstrumentedMatcher(registry *Registry) *InstrumentedMatcher {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &InstrumentedMatcher{registry: registry}
}

// NewInstrumentedMatcherWithConfig creates an instrumented matcher from a
// metrics configuration. When metrics are disabled the matcher still
// works; it just builds its own throwaway registry.
func NewInstrumentedMatcherWithConfig(cfg Config) *InstrumentedMatcher {
	if !cfg.Enabled {
		return &InstrumentedMatcher{registry: NewRegistry(noopRegisterer{})}
	}
	reg := cfg.Registry
	if reg == nil {
		return NewInstrumentedMatcher(nil)
	}
	return &InstrumentedMatcher{registry: NewRegistry(reg)}
}

// ShouldRun evaluates the expression against the snapshot and records the
// outcome and latency.
func (im *InstrumentedMatcher) ShouldRun(expr string, at matcher.Snapshot) (bool, error) {
	start := time.Now()
	ok, err := matcher.ShouldRun(expr, at)
	im.registry.EvaluationDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		im.registry.Evaluations.WithLabelValues(ResultError).Inc()
		if cmerrors.IsMalformed(err) {
			im.registry.MalformedExpressions.Inc()
		}
	case ok:
		im.registry.Evaluations.WithLabelValues(ResultMatch).Inc()
	default:
		im.registry.Evaluations.WithLabelValues(ResultMiss).Inc()
		if field, found := firstMiss(expr, at); found {
			im.registry.FieldMisses.WithLabelValues(field).Inc()
		}
	}
	return ok, err
}

// Validate strictly validates the expression and records the outcome.
func (im *InstrumentedMatcher) Validate(expr string) error {
	err := matcher.Validate(expr)
	if err != nil {
		im.registry.Validations.WithLabelValues("invalid").Inc()
	} else {
		im.registry.Validations.WithLabelValues("valid").Inc()
	}
	return err
}

// firstMiss re-walks the fields in evaluation order to attribute a
// non-match to its field. ShouldRun already returned false, so the walk
// is known to find a mismatch.
func firstMiss(expr string, at matcher.Snapshot) (string, bool) {
	tokens := strings.Fields(expr)
	if len(tokens) == 5 {
		tokens = append(tokens, strconv.Itoa(at.Year))
	}
	values := []int{at.Minute, at.Hour, at.Day, at.Month, at.Weekday, at.Year}

	for i, name := range matcher.FieldNames() {
		set, err := matcher.ExpandField(i, tokens[i])
		if err != nil {
			return "", false
		}
		member := false
		for _, v := range set {
			if v == values[i] {
				member = true
				break
			}
		}
		if !member {
			return name, true
		}
	}
	return "", false
}

// noopRegisterer drops all registrations; used when metrics are disabled.
type noopRegisterer struct{}

func (noopRegisterer) Register(prometheus.Collector) error { return nil }
func (noopRegisterer) MustRegister(...prometheus.Collector) {}
func (noopRegisterer) Unregister(prometheus.Collector) bool { return true }
