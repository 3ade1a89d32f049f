package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	WsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agora_ws_connections",
		Help: "Current number of active websocket room feeds",
	})
	MessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "agora_messages_posted_total",
		Help: "Total number of messages posted to rooms",
	})
	VotesCast = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_votes_cast_total",
		Help: "Total number of vote actions applied to messages",
	}, []string{"action"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(WsConnections, MessagesPosted, VotesCast, HTTPRequestsTotal, HTTPRequestDuration)
}

// GinMiddleware records basic per-request metrics for Prometheus to pull.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		labels := prometheus.Labels{"method": c.Request.Method, "path": path, "status": status}
		HTTPRequestsTotal.With(labels).Inc()
		HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
