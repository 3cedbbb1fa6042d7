package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntityMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_mutations_total",
		Help: "Total number of successful entity mutations",
	}, []string{"entity", "action"})

	StorageErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storage_errors_total",
		Help: "Total number of persistence-layer faults",
	}, []string{"op"})

	BookingViewCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_view_cache_hits_total",
		Help: "Total number of detailed-booking reads served from cache",
	})

	BookingViewCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_view_cache_misses_total",
		Help: "Total number of detailed-booking reads that went to the store",
	})

	BookingViewCacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_view_cache_errors_total",
		Help: "Total number of failed cache reads for the detailed-booking view",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
