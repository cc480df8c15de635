package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeOK is the outcome label recorded for a successful provider call.
// Failures use the provider.ErrorType string.
const OutcomeOK = "ok"

// Metrics records provider call outcomes and latency
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the provider metrics and registers them with reg.
// A nil reg leaves the collectors unregistered, which is handy in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nibbles",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Provider invocations by outcome",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nibbles",
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Time spent building provider context text",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}

	return m
}

// Observe records one provider call. Safe to call on a nil *Metrics.
func (m *Metrics) Observe(provider, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(d.Seconds())
}

// Requests exposes the request counter for inspection
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}
