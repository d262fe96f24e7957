package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for ledger operations.
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeForbidden         = "forbidden"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeInvalidAmount     = "invalid_amount"
	OutcomeCapExceeded       = "cap_exceeded"
	OutcomeError             = "error"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	jobPayments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "ledger",
			Name:      "job_payments_total",
			Help:      "Job payment attempts by outcome.",
		},
		[]string{"outcome"},
	)

	deposits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "ledger",
			Name:      "deposits_total",
			Help:      "Deposit attempts by outcome.",
		},
		[]string{"outcome"},
	)

	movedAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "ledger",
			Name:      "moved_amount_total",
			Help:      "Sum of successfully moved amounts.",
		},
		[]string{"operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		jobPayments,
		deposits,
		movedAmount,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordJobPayment counts a payment attempt; amount is added only on success.
func RecordJobPayment(err error, amount float64) {
	outcome := OutcomeFor(err)
	jobPayments.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		movedAmount.WithLabelValues("job_payment").Add(amount)
	}
}

// RecordDeposit counts a deposit attempt; amount is added only on success.
func RecordDeposit(err error, amount float64) {
	outcome := OutcomeFor(err)
	deposits.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess && amount > 0 {
		movedAmount.WithLabelValues("deposit").Add(amount)
	}
}

// OutcomeFor maps an operation error to its outcome label.
func OutcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return OutcomeInvalidAmount
	case errors.Is(err, apperrors.ErrDepositCapExceeded):
		return OutcomeCapExceeded
	default:
		return OutcomeError
	}
}
