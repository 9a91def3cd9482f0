package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAnalyticsRequest = "analytics.request"
	MetricAnalyticsSkipped = "analytics.row.skipped"
	MetricUserDirectory    = "user_directory.event"
	MetricAPIError         = "api.error"

	OutcomeSuccess = "success"
	OutcomeNoData  = "no_data"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"

	SkipReasonUnknownValue  = "unknown_value"
	SkipReasonMonthOutRange = "month_out_of_range"
)

type PrometheusMetrics struct {
	analyticsRequests    *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
	analyticsSkippedRows *prometheus.CounterVec
	userDirectoryEvents  *prometheus.CounterVec
	apiErrors            prometheus.Counter
}

// NewPrometheusMetrics registers the collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics
// handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		analyticsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of aggregation requests by outcome",
			},
			[]string{"aggregator", "outcome"},
		),
		analyticsDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_duration_seconds",
				Help:    "Aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"aggregator"},
		),
		analyticsSkippedRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_skipped_rows_total",
				Help: "Grouped rows ignored because a channel, zone or month was outside the known set",
			},
			[]string{"aggregator", "reason"},
		),
		userDirectoryEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_directory_events_total",
				Help: "Total number of user directory events",
			},
			[]string{"event"},
		),
		apiErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of error responses written by the API",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	aggregator := tags["aggregator"]

	switch name {
	case MetricAnalyticsRequest:
		if outcome := tags["outcome"]; outcome != "" {
			m.analyticsRequests.WithLabelValues(aggregator, outcome).Inc()
		}
	case MetricAnalyticsSkipped:
		m.analyticsSkippedRows.WithLabelValues(aggregator, tags["reason"]).Inc()
	case MetricUserDirectory:
		if event := tags["event"]; event != "" {
			m.userDirectoryEvents.WithLabelValues(event).Inc()
		}
	case MetricAPIError:
		m.apiErrors.Inc()
	}
}

// RecordProcessingTime observes an aggregation duration; name is the
// aggregator.
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.analyticsDuration.WithLabelValues(name).Observe(duration.Seconds())
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
