package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the advance saga engine.
type Metrics struct {
	AdvancesStarted      prometheus.Counter
	AdvancesSucceeded    prometheus.Counter
	AdvancesFailed       prometheus.Counter
	AdvancesSkipped      *prometheus.CounterVec
	DuplicatesIgnored    prometheus.Counter
	CompensationFailures prometheus.Counter
	AdvanceDuration      prometheus.Histogram
}

// New creates and registers all advancer metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers metrics on the given registerer so tests can isolate
// registries.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AdvancesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastlp_advances_started_total",
			Help: "Saga runs that passed admission and began executing.",
		}),
		AdvancesSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastlp_advances_succeeded_total",
			Help: "Advances forwarded to their destination successfully.",
		}),
		AdvancesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastlp_advances_failed_total",
			Help: "Advances that failed after borrowing and were compensated.",
		}),
		AdvancesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fastlp_advances_skipped_total",
			Help: "Saga runs that stopped before any funds moved.",
		}, []string{"reason"}),
		DuplicatesIgnored: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastlp_duplicate_evidence_total",
			Help: "Evidence submissions rejected by the seen-set.",
		}),
		CompensationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastlp_compensation_failures_total",
			Help: "Saga runs whose compensation itself failed; funds need operator recovery.",
		}),
		AdvanceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fastlp_advance_duration_seconds",
			Help:    "Wall time of a saga run from admission to terminal phase.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
