package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// HandlerFunc handles a request and returns what to render.
type HandlerFunc func(r *http.Request) Response

// ErrorHandler writes err to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type wrapConfig struct {
	logger       *slog.Logger
	errorHandler ErrorHandler
}

// Option configures Wrap.
type Option func(*wrapConfig)

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(c *wrapConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts h to an http.HandlerFunc.
func Wrap(h HandlerFunc, opts ...Option) http.HandlerFunc {
	cfg := &wrapConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = DefaultErrorHandler(cfg.logger)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// Error returns a Response that hands err to the error handler.
func Error(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
}

// DefaultErrorHandler logs err and answers with its HTTPError status and key,
// or 500 for anything else. Datastar requests get an "error" signal instead,
// since the event stream has already committed to 200.
func DefaultErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := ErrInternalServerError
		errors.As(err, &httpErr)

		level := slog.LevelError
		if httpErr.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(middleware.GetReqID(r.Context())),
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) {
			if sigErr := Signals(map[string]any{"error": httpErr.Key}).Render(w, r); sigErr == nil {
				return
			}
		}
		http.Error(w, httpErr.Key, httpErr.Code)
	}
}
