// Command formkit serves a live-validated sign-up form.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/formstore"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/metrics"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

var version = "dev"

type appConfig struct {
	Env                 string        `env:"APP_ENV" envDefault:"development"`
	Name                string        `env:"APP_NAME" envDefault:"formkit"`
	Definition          string        `env:"FORM_DEFINITION"`
	StrictPasswordMatch bool          `env:"FORM_STRICT_PASSWORD_MATCH" envDefault:"false"`
	StoreCapacity       int           `env:"FORM_STORE_CAPACITY" envDefault:"10000"`
	StoreTTL            time.Duration `env:"FORM_STORE_TTL" envDefault:"30m"`
	SweepInterval       time.Duration `env:"FORM_STORE_SWEEP_INTERVAL" envDefault:"1m"`
	SuccessURL          string        `env:"SIGNUP_SUCCESS_URL"`
	MetricsNamespace    string        `env:"METRICS_NAMESPACE" envDefault:"formkit"`
	RateLimitEnabled    bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return fmt.Errorf("load http config: %w", err)
	}
	var rlCfg ratelimiter.Config
	if err := config.Load(&rlCfg); err != nil {
		return fmt.Errorf("load rate limit config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)
	log.Info("starting formkit", "version", version)

	def, err := loadDefinition(cfg.Definition)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg, cfg.MetricsNamespace)
	if err != nil {
		return err
	}

	store := formstore.New(
		formstore.WithCapacity(cfg.StoreCapacity),
		formstore.WithTTL(cfg.StoreTTL),
		formstore.WithLogger(log),
		formstore.WithEvictCallback(m.OnEvict),
	)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.StoreTTL > 0 && cfg.SweepInterval > 0 {
		go store.Run(ctx, cfg.SweepInterval)
	}

	var limiter *ratelimiter.Limiter
	if cfg.RateLimitEnabled {
		limiter, err = ratelimiter.New(rlCfg, ratelimiter.WithLogger(log))
		if err != nil {
			return err
		}
		go limiter.Run(ctx, time.Minute)
	}

	router, err := newRouter(routerDeps{
		cfg:        cfg,
		definition: def,
		store:      store,
		metrics:    m,
		registry:   reg,
		limiter:    limiter,
		logger:     log,
	})
	if err != nil {
		return err
	}

	return httpserver.New(srvCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
