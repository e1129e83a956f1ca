// Package metrics records Prometheus counters and latency histograms for
// auth service calls, labeled by client operation.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels that are not a status class.
const (
	// OutcomeTransportError labels calls that never received an HTTP response.
	OutcomeTransportError = "transport_error"
	// OutcomeEncodeError labels calls whose request body could not be encoded.
	OutcomeEncodeError = "encode_error"
	// OutcomeDecodeError labels 2xx responses whose body could not be decoded.
	OutcomeDecodeError = "decode_error"
)

// Metrics holds the collectors shared by every AuthClient configured with
// them. Requests is labeled by operation and outcome; RequestDuration by
// operation only.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the client collectors on reg. A nil reg registers on the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "authclient_requests_total",
			Help: "Total number of auth service calls, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authclient_request_duration_seconds",
			Help:    "Duration of auth service calls in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
	}
}

// ObserveRequest records one call under outcome, usually Outcome(statusCode).
func (m *Metrics) ObserveRequest(operation, outcome string, start time.Time) {
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Outcome maps a status code to its class label ("2xx", "4xx", ...).
func Outcome(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return OutcomeTransportError
	}
	return strconv.Itoa(statusCode/100) + "xx"
}
