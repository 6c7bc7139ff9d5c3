package metrics

import (
	"checkout_verifier/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "checkout_verifier"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Verification decisions by path and outcome.",
		},
		[]string{"path", "outcome"},
	)

	webhooksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_total",
			Help:      "Webhook deliveries by outcome.",
		},
		[]string{"outcome"},
	)

	gatewayResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_resolutions_total",
			Help:      "Gateway status lookups by result.",
		},
		[]string{"result"},
	)

	amountMismatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_mismatches_total",
			Help:      "Verifications where the declared amount differs from the gateway amount.",
		},
	)
)

// Recorder feeds the payment counters. The zero value is ready to use.
type Recorder struct{}

var _ interfaces.IPaymentMetrics = Recorder{}

func (Recorder) ObserveVerification(path, outcome string) {
	verificationsTotal.WithLabelValues(path, outcome).Inc()
}

func (Recorder) ObserveWebhook(outcome string) {
	webhooksTotal.WithLabelValues(outcome).Inc()
}

func (Recorder) ObserveGatewayResolution(result string) {
	gatewayResolutionsTotal.WithLabelValues(result).Inc()
}

func (Recorder) ObserveAmountMismatch() {
	amountMismatchesTotal.Inc()
}

// GinMiddleware records request counts and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
