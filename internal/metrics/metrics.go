// AngelaMos | 2026
// metrics.go

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

// Metrics holds the service's Prometheus collectors on a private registry.
// All recording methods are safe on a nil receiver so tests can omit it.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec
	agreements     *prometheus.CounterVec
	statusChanges  *prometheus.CounterVec
	payments       prometheus.Counter
	paymentIntents *prometheus.CounterVec
	couponLookups  *prometheus.CounterVec
	userUpserts    *prometheus.CounterVec
}

func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		statusCategory: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_status_category_total",
			Help:        "Responses by status category (2xx, 4xx, 5xx)",
			ConstLabels: constLabels,
		}, []string{"category"}),
		agreements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estateease_agreement_submissions_total",
			Help:        "Agreement submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estateease_agreement_status_changes_total",
			Help:        "Agreement status updates by target status and outcome",
			ConstLabels: constLabels,
		}, []string{"status", "outcome"}),
		payments: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "estateease_payments_recorded_total",
			Help:        "Rent payments appended to the ledger",
			ConstLabels: constLabels,
		}),
		paymentIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estateease_payment_intents_total",
			Help:        "Payment intents requested from the gateway by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		couponLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estateease_coupon_lookups_total",
			Help:        "Coupon validations by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		userUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estateease_user_upserts_total",
			Help:        "User upserts by action (created, refreshed)",
			ConstLabels: constLabels,
		}, []string{"action"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.statusCategory,
		m.agreements,
		m.statusChanges,
		m.payments,
		m.paymentIntents,
		m.couponLookups,
		m.userUpserts,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by chi route
// pattern, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		path := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		statusStr := strconv.Itoa(status)
		m.requests.WithLabelValues(r.Method, path, statusStr).Inc()
		m.duration.WithLabelValues(r.Method, path, statusStr).
			Observe(time.Since(start).Seconds())

		if category := statusCategory(status); category != "" {
			m.statusCategory.WithLabelValues(category).Inc()
		}
	})
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

func (m *Metrics) AgreementSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.agreements.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AgreementStatusChanged(status, outcome string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status, outcome).Inc()
}

func (m *Metrics) PaymentRecorded() {
	if m == nil {
		return
	}
	m.payments.Inc()
}

func (m *Metrics) PaymentIntent(outcome string) {
	if m == nil {
		return
	}
	m.paymentIntents.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CouponLookup(result string) {
	if m == nil {
		return
	}
	m.couponLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) UserUpserted(action string) {
	if m == nil {
		return
	}
	m.userUpserts.WithLabelValues(action).Inc()
}
