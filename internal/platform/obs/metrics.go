package obs

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "collection"

// Metrics holds every Prometheus collector the dashboard exports.
type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec
	DatasetLoads        *prometheus.CounterVec
	DatasetRecords      prometheus.Gauge
	ChatRequests        *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "http request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"status", "route"},
		),
		HTTPResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "http response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(256, 2, 10),
			},
			[]string{"status", "route"},
		),
		DatasetLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_loads_total",
				Help:      "number of dataset fetches, by outcome",
			},
			[]string{"outcome"},
		),
		DatasetRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_records",
				Help:      "number of records in the last loaded dataset",
			},
		),
		ChatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_requests_total",
				Help:      "number of chat relay calls, by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.HTTPRequestDuration, m.HTTPResponseSize, m.DatasetLoads, m.DatasetRecords, m.ChatRequests)
	return m
}

// RecordLoad counts one dataset fetch; records is only set on success.
func (m *Metrics) RecordLoad(outcome string, records int) {
	if m == nil {
		return
	}
	m.DatasetLoads.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.DatasetRecords.Set(float64(records))
	}
}

// RecordChat counts one chat relay call.
func (m *Metrics) RecordChat(outcome string) {
	if m == nil {
		return
	}
	m.ChatRequests.WithLabelValues(outcome).Inc()
}

// ObserveRequest records latency and size for one served request.
func (m *Metrics) ObserveRequest(route string, status, size int, latency time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"status": strconv.Itoa(status), "route": route}
	m.HTTPRequestDuration.With(labels).Observe(latency.Seconds())
	m.HTTPResponseSize.With(labels).Observe(float64(size))
}
