// Package metrics provides Prometheus collectors for the retrospective API and
// a gin middleware that records per-route HTTP metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "retro",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "retro",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "retro",
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	boardMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "retro",
			Name:      "board_mutations_total",
			Help:      "Board mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	boardEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "retro",
			Name:      "board_events_published_total",
			Help:      "Board events written to Redis streams, by result",
		},
		[]string{"result"},
	)

	countersReconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "retro",
			Name:      "counters_reconciled_total",
			Help:      "Feedback rows whose cached counter was corrected by the reconciler",
		},
		[]string{"counter"},
	)
)

// Middleware records request count, latency and in-flight requests.
// The route template is used as the path label to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveMutation counts one board mutation. err == nil is recorded as "ok".
func ObserveMutation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	boardMutations.WithLabelValues(operation, outcome).Inc()
}

func ObservePublish(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	boardEventsPublished.WithLabelValues(result).Inc()
}

func ObserveReconciled(counter string, rows int64) {
	if rows > 0 {
		countersReconciled.WithLabelValues(counter).Add(float64(rows))
	}
}
