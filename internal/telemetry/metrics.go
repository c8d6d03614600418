package telemetry

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tournevent/shipit/pkg/shipit"
)

// Metrics holds the Prometheus metrics of Shipit API calls.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	APIErrors       *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipit_requests_total",
				Help: "Total number of Shipit API requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipit_request_duration_seconds",
				Help:    "Shipit API request duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		APIErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipit_errors_total",
				Help: "Total Shipit API errors by operation and error type",
			},
			[]string{"operation", "error_type"},
		),
	}
}

// ObserveRequest implements shipit.Observer.
func (m *Metrics) ObserveRequest(operation string, status int, duration time.Duration, err error) {
	m.RecordRequest(operation, statusLabel(status), duration.Seconds())
	if err != nil {
		m.RecordError(operation, errorType(err))
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(operation, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordError records an API error metric.
func (m *Metrics) RecordError(operation, errorType string) {
	m.APIErrors.WithLabelValues(operation, errorType).Inc()
}

func statusLabel(status int) string {
	if status == 0 {
		return "none"
	}
	return strconv.Itoa(status)
}

func errorType(err error) string {
	var (
		httpErr      *shipit.HTTPError
		transportErr *shipit.TransportError
	)
	switch {
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &transportErr):
		return "transport"
	}
	return "other"
}

var _ shipit.Observer = (*Metrics)(nil)
