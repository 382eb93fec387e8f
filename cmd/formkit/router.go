package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/modules/signup"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formstore"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/metrics"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

type routerDeps struct {
	cfg        appConfig
	definition form.Definition
	store      *formstore.Store
	metrics    *metrics.Metrics
	registry   prometheus.Gatherer
	limiter    *ratelimiter.Limiter
	logger     *slog.Logger
}

func newRouter(d routerDeps) (http.Handler, error) {
	svc, err := signup.New(d.definition, d.store,
		signup.WithLogger(d.logger),
		signup.WithBasePath("/signup"),
		signup.WithSuccessURL(d.cfg.SuccessURL),
		signup.WithAttachHook(func(uuid.UUID) { d.metrics.InstanceAdded() }),
		signup.WithSubmitter(logSubmitter(d.logger)),
		signup.WithEngineOptions(
			form.WithObserver(d.metrics),
			form.WithStrictPasswordMatch(d.cfg.StrictPasswordMatch || d.definition.StrictPasswordMatch),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("signup module: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthHandler(d.logger))
	r.Get("/health/ready", httpserver.HealthHandler(d.logger, d.store.Ping))
	r.Handle("/metrics", metrics.Handler(d.registry))

	r.Group(func(r chi.Router) {
		r.Use(d.metrics.Middleware)
		if d.limiter != nil {
			throttled := handler.Wrap(func(*http.Request) handler.Response {
				return handler.Error(handler.ErrTooManyRequests)
			}, handler.WithLogger(d.logger))
			r.Use(ratelimiter.Middleware(d.limiter, ratelimiter.ByRemoteIP,
				ratelimiter.WithDeniedHandler(throttled),
				ratelimiter.WithMiddlewareLogger(d.logger),
			))
		}
		r.Mount("/signup", svc.Handle())
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/signup/", http.StatusFound)
		})
	})

	return r, nil
}

// logSubmitter records accepted submissions. Values are not logged.
func logSubmitter(log *slog.Logger) signup.Submitter {
	return signup.SubmitterFunc(func(ctx context.Context, formName string, values map[string]string) error {
		log.InfoContext(ctx, "form accepted", logger.Form(formName), slog.Int("fields", len(values)))
		return nil
	})
}

// loadDefinition reads the YAML form definition at path, or the built-in
// sign-up form when path is empty.
func loadDefinition(path string) (form.Definition, error) {
	if path == "" {
		return signup.DefaultDefinition()
	}

	f, err := os.Open(path)
	if err != nil {
		return form.Definition{}, fmt.Errorf("open form definition: %w", err)
	}
	defer f.Close()

	def, err := form.LoadDefinition(f)
	if err != nil {
		return form.Definition{}, fmt.Errorf("load form definition %s: %w", path, err)
	}
	return def, nil
}
