// Package metrics exposes Prometheus collectors for scoring activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeCanceled = "canceled"
)

// Metrics records scoring requests, their latency and the indices they
// produce, per transport.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	finalIndex *prometheus.HistogramVec
}

// MustNew builds the collectors and registers them with reg. A collector
// that is already registered under the same name is reused, so several
// services may share one registry. Any other registration error panics.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lmi",
				Subsystem: "scoring",
				Name:      "requests_total",
				Help:      "Scoring requests by transport and outcome.",
			},
			[]string{"transport", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lmi",
				Subsystem: "scoring",
				Name:      "duration_seconds",
				Help:      "Time spent decoding and scoring a request.",
				Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
			[]string{"transport"},
		),
		finalIndex: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lmi",
				Subsystem: "scoring",
				Name:      "final_index",
				Help:      "Distribution of final Life Morale Index values.",
				Buckets:   prometheus.LinearBuckets(1, 1, 10),
			},
			[]string{"run"},
		),
	}

	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)
	m.finalIndex = register(reg, m.finalIndex)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveRequest records one scoring request.
func (m *Metrics) ObserveRequest(transport, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, outcome).Inc()
	m.duration.WithLabelValues(transport).Observe(elapsed.Seconds())
}

// ObserveIndex records the final index of a current or scenario run.
func (m *Metrics) ObserveIndex(run string, value float64) {
	if m == nil {
		return
	}
	m.finalIndex.WithLabelValues(run).Observe(value)
}
