package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shareit_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shareit_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func Metrics(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	path := ctx.FullPath()
	if path == "" {
		path = ctx.Request.URL.Path
	}
	status := strconv.Itoa(ctx.Writer.Status())
	httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
}
