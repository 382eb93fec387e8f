// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled and in-flight requests have drained, or
// when the listener fails. HealthHandler serves liveness and readiness probes.
package httpserver
