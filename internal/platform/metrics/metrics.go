// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caja_http_requests_total",
		Help: "Total HTTP requests processed, by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "caja_http_request_duration_seconds",
		Help:    "HTTP request latency distribution.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// TraspasosRegistrados counts transfers whose primary leg posted.
	TraspasosRegistrados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caja_traspasos_registrados_total",
		Help: "Transfers posted (primary leg recorded).",
	})

	// TraspasosReversoFallido counts transfers whose reverse leg failed and
	// therefore need manual reconciliation at the destination register.
	TraspasosReversoFallido = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caja_traspasos_reverso_fallido_total",
		Help: "Transfers whose reverse leg could not be posted.",
	})

	// MovimientosAprobados counts ledger entries signed off.
	MovimientosAprobados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caja_movimientos_aprobados_total",
		Help: "Ledger entries transitioned to approved.",
	})
)

// HTTPMiddleware records request counts and latency per route.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues(c.Request.Method, route))

		c.Next()

		timer.ObserveDuration()
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
