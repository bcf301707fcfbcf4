package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Evaluation outcome label values.
const (
	ResultMatch = "match"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Registry holds all metric instances for cronmatch components.
type Registry struct {
	// Evaluations counts ShouldRun calls by outcome (match, miss, error).
	Evaluations *prometheus.CounterVec

	// MalformedExpressions counts evaluations rejected for a wrong field count.
	MalformedExpressions prometheus.Counter

	// FieldMisses counts which field caused a non-match, by field name.
	FieldMisses *prometheus.CounterVec

	// EvaluationDuration observes ShouldRun latency in seconds.
	EvaluationDuration prometheus.Histogram

	// Validations counts strict validation calls by outcome (valid, invalid).
	Validations *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by cronmatch components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronmatch",
				Subsystem: "matcher",
				Name:      "evaluations_total",
				Help:      "Total number of schedule evaluations by outcome",
			},
			[]string{"result"},
		),

		MalformedExpressions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cronmatch",
				Subsystem: "matcher",
				Name:      "malformed_expressions_total",
				Help:      "Total number of evaluations rejected for a wrong field count",
			},
		),

		FieldMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronmatch",
				Subsystem: "matcher",
				Name:      "field_misses_total",
				Help:      "Total number of non-matches attributed to each field",
			},
			[]string{"field"},
		),

		EvaluationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cronmatch",
				Subsystem: "matcher",
				Name:      "evaluation_duration_seconds",
				Help:      "Time spent evaluating schedule expressions",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),

		Validations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronmatch",
				Subsystem: "matcher",
				Name:      "validations_total",
				Help:      "Total number of strict validations by outcome",
			},
			[]string{"result"},
		),
	}
}
