package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments updated by the use cases.
type Metrics struct {
	positionMutations *prometheus.CounterVec
	recordSubmissions *prometheus.CounterVec
	recordTransitions *prometheus.CounterVec
	snapshotDuration  prometheus.Histogram
}

// NewMetrics registers the use case metrics on reg. A nil registerer keeps
// the metrics unregistered, which tests rely on.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		positionMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demonlist_position_mutations_total",
				Help: "ranked list mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		recordSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demonlist_record_submissions_total",
				Help: "record submissions by outcome",
			},
			[]string{"outcome"},
		),
		recordTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demonlist_record_transitions_total",
				Help: "record status transitions by target status and outcome",
			},
			[]string{"status", "outcome"},
		),
		snapshotDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "demonlist_snapshot_reconstruction_seconds",
				Help:    "time spent replaying history into a past snapshot",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
	}
}

func (m *Metrics) observePositionMutation(operation string, err error) {
	if m == nil {
		return
	}
	m.positionMutations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) observeSubmission(err error) {
	if m == nil {
		return
	}
	m.recordSubmissions.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) observeTransition(status string, err error) {
	if m == nil {
		return
	}
	m.recordTransitions.WithLabelValues(status, outcome(err)).Inc()
}

func (m *Metrics) observeSnapshot(started time.Time) {
	if m == nil {
		return
	}
	m.snapshotDuration.Observe(time.Since(started).Seconds())
}
