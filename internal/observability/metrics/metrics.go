package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus observability primitives for the service.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	generations  *prometheus.CounterVec
	payoutTotal  prometheus.Counter
}

// New registers and returns the service metrics.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers metrics on reg; tests pass a private registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fairstyle_http_requests_total",
		Help: "Counts HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fairstyle_http_request_duration_seconds",
		Help:    "HTTP request latency per method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fairstyle_generations_total",
		Help: "Counts generation attempts by style and outcome.",
	}, []string{"style", "status"})

	payoutTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairstyle_artist_payout_estimated_total",
		Help: "Running sum of estimated artist payouts across generations.",
	})

	reg.MustRegister(httpRequests, httpDuration, generations, payoutTotal)

	return &Metrics{
		httpRequests: httpRequests,
		httpDuration: httpDuration,
		generations:  generations,
		payoutTotal:  payoutTotal,
	}
}

// ObserveGeneration records one generation attempt.
func (m *Metrics) ObserveGeneration(styleID, status string, payoutEst float64) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(styleID, status).Inc()
	if payoutEst > 0 {
		m.payoutTotal.Add(payoutEst)
	}
}

// GinMiddleware records request counts and latency.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
