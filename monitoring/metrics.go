package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Исходящие вызовы основного API PVNDORA
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pvndora_api_requests_total",
			Help: "Total number of outbound PVNDORA API calls",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pvndora_api_request_duration_seconds",
			Help:    "Duration of outbound PVNDORA API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	StudioEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pvndora_studio_events_total",
			Help: "Studio generation status events received over SSE",
		},
		[]string{"status"},
	)
)
