package infoserver

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector tracks request counts and latency per route
type MetricsCollector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	unknownBodies   prometheus.Counter
	rateLimited     prometheus.Counter
}

// NewMetricsCollector registers the collectors on a private registry so
// several servers can coexist in one process
func NewMetricsCollector() *MetricsCollector {
	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "info_request_duration_seconds",
				Help: "Time spent serving info requests",
			},
			[]string{"route"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "info_requests_total",
				Help: "Total number of info requests",
			},
			[]string{"route", "status"},
		),
		unknownBodies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "info_unknown_body_total",
			Help: "Planet lookups for names not in the catalog",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "info_rate_limited_total",
			Help: "Requests rejected by the per-client limiter",
		}),
	}

	m.registry.MustRegister(m.requestDuration, m.requestsTotal, m.unknownBodies, m.rateLimited)
	return m
}

// Middleware records every request after it is served
func (m *MetricsCollector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the registry in Prometheus text format
func (m *MetricsCollector) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
