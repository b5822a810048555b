// Package metrics collects and exposes Prometheus metrics for the API and
// the entitlement gate.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	requestDuration prometheus.Histogram
	premiumDenials  prometheus.Counter
	coercions       prometheus.Counter
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		premiumDenials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_premium_read_denials_total",
			Help: "Reads of premium posts answered with an excerpt instead of full content",
		}),
		coercions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_visibility_coercions_total",
			Help: "Premium visibility requests downgraded to free for non-entitled authors",
		}),
	}

	registry.MustRegister(c.httpRequests, c.requestDuration, c.premiumDenials, c.coercions)

	return c
}

func (c *Collector) RecordPremiumDenial() {
	c.premiumDenials.Inc()
}

func (c *Collector) RecordVisibilityCoercion() {
	c.coercions.Inc()
}

// Middleware records per-request counters keyed by the route template, not
// the raw path, to keep cardinality bounded.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		c.httpRequests.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.requestDuration.Observe(time.Since(start).Seconds())
	}
}

// Handler serves the scrape endpoint.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
