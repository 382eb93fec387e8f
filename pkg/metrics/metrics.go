package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formstore"
)

// ErrRegister is returned when a collector cannot be registered.
var ErrRegister = errors.New("failed to register metrics collector")

// Metrics holds the formkit collectors. It implements form.Observer and its
// OnEvict method fits formstore.WithEvictCallback.
type Metrics struct {
	evaluations *prometheus.CounterVec
	submits     *prometheus.CounterVec
	instances   prometheus.Gauge
	evictions   *prometheus.CounterVec
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    prometheus.Gauge
}

var _ form.Observer = (*Metrics)(nil)

// New creates the collectors under namespace and registers them with reg.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_evaluations_total",
			Help:      "Field rule evaluations by form, field, result and failure code",
		}, []string{"form", "field", "result", "code"}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submits_total",
			Help:      "Submit attempts by form and outcome",
		}, []string{"form", "result"}),
		instances: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "form_instances",
			Help:      "Live form instances held in the store",
		}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_instance_evictions_total",
			Help:      "Form instances that left the store, by reason",
		}, []string{"reason"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.evaluations, m.submits, m.instances, m.evictions,
		m.requests, m.duration, m.inFlight,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}
	return m, nil
}

// ObserveEvaluation counts one field evaluation.
func (m *Metrics) ObserveEvaluation(ev form.Evaluation) {
	result := "valid"
	if ev.State == form.StateInvalid {
		result = "invalid"
	}
	m.evaluations.WithLabelValues(ev.Form, ev.Field, result, string(ev.Code)).Inc()
}

// ObserveSubmit counts one submit attempt.
func (m *Metrics) ObserveSubmit(formName string, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.submits.WithLabelValues(formName, result).Inc()
}

// InstanceAdded records a new live instance.
func (m *Metrics) InstanceAdded() { m.instances.Inc() }

// OnEvict records an instance leaving the store.
func (m *Metrics) OnEvict(_ uuid.UUID, _ *form.Engine, reason formstore.EvictReason) {
	m.instances.Dec()
	m.evictions.WithLabelValues(string(reason)).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE responses streaming through the wrapper.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// Middleware records request count, latency and in-flight requests, labelled
// by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
