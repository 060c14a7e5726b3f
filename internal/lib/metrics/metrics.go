// Package metrics exposes Prometheus collectors for the action dispatcher
// and its collaborators. All methods are safe on a nil *Metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ActionBuckets are latency buckets in seconds.
var ActionBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type Metrics struct {
	ActionsTotal    *prometheus.CounterVec
	ActionDuration  *prometheus.HistogramVec
	WeatherUpstream *prometheus.CounterVec
	AuditEvents     *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec
}

// New registers the collectors on registerer under namespace.
func New(namespace string, registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		ActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Dispatched actions by class, action and response status",
			},
			[]string{"class", "action", "status_code"},
		),
		ActionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "action_duration_seconds",
				Help:      "Action handler latency by class",
				Buckets:   ActionBuckets,
			},
			[]string{"class"},
		),
		WeatherUpstream: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_upstream_total",
				Help:      "Weather provider calls by result",
			},
			[]string{"result"},
		),
		AuditEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_events_total",
				Help:      "Audit entries by sink and result",
			},
			[]string{"sink", "result"},
		),
		RateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter by path",
			},
			[]string{"path"},
		),
	}
}

// ObserveAction records one dispatched action. Unknown actions are folded
// into "unknown" so arbitrary query strings cannot grow the label set.
func (m *Metrics) ObserveAction(class, action string, known bool, status int, d time.Duration) {
	if m == nil {
		return
	}
	if !known {
		action = "unknown"
	}
	m.ActionsTotal.WithLabelValues(class, action, strconv.Itoa(status)).Inc()
	m.ActionDuration.WithLabelValues(class).Observe(d.Seconds())
}

func (m *Metrics) ObserveWeather(result string) {
	if m == nil {
		return
	}
	m.WeatherUpstream.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAudit(sink, result string) {
	if m == nil {
		return
	}
	m.AuditEvents.WithLabelValues(sink, result).Inc()
}

func (m *Metrics) ObserveRateLimited(path string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(path).Inc()
}
