// Package metrics exposes Prometheus collectors for outbound provider calls.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "walletportal"

// Provider call outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeProviderError  = "provider_error"
	OutcomeTransportError = "transport_error"
	OutcomeMalformed      = "malformed"
	OutcomeRejected       = "rejected"
)

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// ProviderMetrics counts and times calls to the wallet provider.
// A nil *ProviderMetrics is valid and records nothing.
type ProviderMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewProviderMetrics registers the provider collectors on reg.
func NewProviderMetrics(reg prometheus.Registerer) (*ProviderMetrics, error) {
	m := &ProviderMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_requests_total",
				Help:      "Total wallet provider calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Duration of wallet provider calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register provider metrics")
		}
	}

	return m, nil
}

// Observe records one finished call.
func (m *ProviderMetrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
