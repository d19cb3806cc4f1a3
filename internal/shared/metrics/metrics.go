package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "offr_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "offr_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	assessments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "offr_assessments_total",
		Help: "Completed assessments by band.",
	}, []string{"band"})

	aiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "offr_ai_calls_total",
		Help: "Narrative provider calls by kind and outcome.",
	}, []string{"kind", "outcome"})

	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "offr_ai_call_duration_seconds",
		Help:    "Narrative provider call latency by kind.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"kind"})

	cacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "offr_catalogue_cache_events_total",
		Help: "Catalogue cache hits and misses.",
	}, []string{"event"})
)

// RecordAssessment increments the assessment counter for a band.
func RecordAssessment(band string) {
	assessments.WithLabelValues(band).Inc()
}

// RecordAICall records a provider call outcome and its duration.
func RecordAICall(kind, outcome string, elapsed time.Duration) {
	aiCalls.WithLabelValues(kind, outcome).Inc()
	aiDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// RecordCacheHit increments the catalogue cache hit counter.
func RecordCacheHit() { cacheEvents.WithLabelValues("hit").Inc() }

// RecordCacheMiss increments the catalogue cache miss counter.
func RecordCacheMiss() { cacheEvents.WithLabelValues("miss").Inc() }

// HTTPMetrics records per-request counters and latency.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
