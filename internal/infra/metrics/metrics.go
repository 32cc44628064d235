// Package metrics exposes Prometheus collectors for HTTP traffic and the payment ledger.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "mescontacts"

// Collector owns a private registry so several instances can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	paymentsTotal    *prometheus.CounterVec
	paymentAmount    *prometheus.CounterVec
	refundsTotal     *prometheus.CounterVec
	refundedAmount   *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
}

// NewCollector registers every collector under the configured namespace.
func NewCollector(cfg *config.Config) *Collector {
	namespace := defaultNamespace
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		paymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_recorded_total",
				Help:      "Total number of payments recorded in the ledger",
			},
			[]string{"status", "method"},
		),
		paymentAmount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_recorded_cents_total",
				Help:      "Sum of recorded payment amounts in cents",
			},
			[]string{"status", "method"},
		),
		refundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_refunded_total",
				Help:      "Total number of refunded payments",
			},
			[]string{"method"},
		),
		refundedAmount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_refunded_cents_total",
				Help:      "Sum of refunded payment amounts in cents",
			},
			[]string{"method"},
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "post_status_transitions_total",
				Help:      "Total number of listing status transitions",
			},
			[]string{"from", "to"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requestsTotal,
		c.requestDuration,
		c.paymentsTotal,
		c.paymentAmount,
		c.refundsTotal,
		c.refundedAmount,
		c.transitionsTotal,
	)

	return c
}

// RegisterDBStats exports pool statistics for db under the given name.
// Registering the same name twice keeps the first collector.
func (c *Collector) RegisterDBStats(name string, db *sql.DB) error {
	err := c.registry.Register(collectors.NewDBStatsCollector(db, name))
	var already prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &already) {
		return errors.Wrap(err, "register db stats")
	}

	return nil
}

// PaymentRecorded implements service.LedgerMetrics.
func (c *Collector) PaymentRecorded(status entity.PaymentStatus, method entity.PaymentMethod, amount int64) {
	c.paymentsTotal.WithLabelValues(status.String(), method.String()).Inc()
	c.paymentAmount.WithLabelValues(status.String(), method.String()).Add(float64(amount))
}

// PaymentRefunded implements service.LedgerMetrics.
func (c *Collector) PaymentRefunded(method entity.PaymentMethod, amount int64) {
	c.refundsTotal.WithLabelValues(method.String()).Inc()
	c.refundedAmount.WithLabelValues(method.String()).Add(float64(amount))
}

// StatusChanged implements service.LedgerMetrics. A nil from is reported as "NONE".
func (c *Collector) StatusChanged(from *entity.PostStatus, to entity.PostStatus) {
	fromLabel := "NONE"
	if from != nil {
		fromLabel = from.String()
	}
	c.transitionsTotal.WithLabelValues(fromLabel, to.String()).Inc()
}

// Middleware records request count and latency per route template.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			start := time.Now()

			err := next(ec)

			status := ec.Response().Status
			if err != nil && !ec.Response().Committed {
				// The error handler has not written the response yet.
				status = statusOf(err)
			}

			path := ec.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{ec.Request().Method, path, strconv.Itoa(status)}
			c.requestsTotal.WithLabelValues(labels...).Inc()
			c.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
