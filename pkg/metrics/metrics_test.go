package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formstore"
	"github.com/dmitrymomot/formkit/pkg/metrics"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, "formkit")
	require.NoError(t, err)
	return m, reg
}

func TestNew_DuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()

	_, err := metrics.New(reg, "formkit")
	require.NoError(t, err)
	_, err = metrics.New(reg, "formkit")
	assert.ErrorIs(t, err, metrics.ErrRegister)
}

func TestObserver_CountsEngineActivity(t *testing.T) {
	t.Parallel()
	m, reg := newMetrics(t)

	e, err := form.New("signup", []form.Descriptor{
		{Name: "email", Kind: form.KindEmail, Required: true},
	}, form.WithObserver(m))
	require.NoError(t, err)

	_, err = e.HandleFieldEvent("email", form.EventChange, "bad@")
	require.NoError(t, err)
	_, err = e.HandleFieldEvent("email", form.EventChange, "user@example.com")
	require.NoError(t, err)
	e.Submit()

	expected := `
# HELP formkit_form_submits_total Submit attempts by form and outcome
# TYPE formkit_form_submits_total counter
formkit_form_submits_total{form="signup",result="accepted"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "formkit_form_submits_total"))

	expected = `
# HELP formkit_field_evaluations_total Field rule evaluations by form, field, result and failure code
# TYPE formkit_field_evaluations_total counter
formkit_field_evaluations_total{code="",field="email",form="signup",result="valid"} 2
formkit_field_evaluations_total{code="format",field="email",form="signup",result="invalid"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "formkit_field_evaluations_total"))
}

func TestOnEvict_TracksInstances(t *testing.T) {
	t.Parallel()
	m, reg := newMetrics(t)
	store := formstore.New(formstore.WithCapacity(1), formstore.WithEvictCallback(m.OnEvict))

	add := func() uuid.UUID {
		e, err := form.New("signup", []form.Descriptor{{Name: "email", Kind: form.KindEmail}})
		require.NoError(t, err)
		id, err := store.Add(e)
		require.NoError(t, err)
		m.InstanceAdded()
		return id
	}

	add()
	id := add()
	store.Remove(id)

	expected := `
# HELP formkit_form_instance_evictions_total Form instances that left the store, by reason
# TYPE formkit_form_instance_evictions_total counter
formkit_form_instance_evictions_total{reason="capacity"} 1
formkit_form_instance_evictions_total{reason="removed"} 1
# HELP formkit_form_instances Live form instances held in the store
# TYPE formkit_form_instances gauge
formkit_form_instances 0
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"formkit_form_instance_evictions_total", "formkit_form_instances"))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	t.Parallel()
	m, reg := newMetrics(t)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/{id}/submit", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	for range 2 {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+uuid.NewString()+"/submit", nil))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}

	expected := `
# HELP formkit_http_requests_total Total number of HTTP requests
# TYPE formkit_http_requests_total counter
formkit_http_requests_total{method="POST",route="/{id}/submit",status="422"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "formkit_http_requests_total"))
	n, err := testutil.GatherAndCount(reg, "formkit_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHandler(t *testing.T) {
	t.Parallel()
	m, reg := newMetrics(t)
	m.ObserveSubmit("signup", false)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `formkit_form_submits_total{form="signup",result="rejected"} 1`)
}
