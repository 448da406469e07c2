// AngelaMos | 2026
// metrics_test.go

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New("estateease-test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/agreements/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, email := range []string{"a@x.com", "b@x.com"} {
		r.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/agreements/"+email, nil))
	}

	got := testutil.ToFloat64(
		m.requests.WithLabelValues(http.MethodGet, "/agreements/{key}", "404"),
	)
	assert.InDelta(t, 2, got, 0.001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.statusCategory.WithLabelValues("4xx")), 0.001)
}

func TestDomainCounters(t *testing.T) {
	m := New("estateease-test")

	m.AgreementSubmitted("created")
	m.AgreementSubmitted("duplicate")
	m.AgreementSubmitted("created")
	m.PaymentRecorded()

	assert.InDelta(t, 2, testutil.ToFloat64(m.agreements.WithLabelValues("created")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.payments), 0.001)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AgreementSubmitted("created")
		m.AgreementStatusChanged("accepted", "ok")
		m.PaymentRecorded()
		m.PaymentIntent("ok")
		m.CouponLookup("valid")
		m.UserUpserted("created")
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New("estateease-test")
	m.PaymentRecorded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "estateease_payments_recorded_total"))
}
