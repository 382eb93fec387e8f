package form

import (
	"context"
	"log/slog"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used by the birthdate rule. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMessages overrides entries of the message catalog.
func WithMessages(m Messages) Option {
	return func(e *Engine) {
		e.messages = e.messages.Merge(m)
	}
}

// WithStrictPasswordMatch treats a confirmation with exactly one side empty as
// a mismatch instead of a pass.
func WithStrictPasswordMatch(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithObserver registers an evaluation observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h noopHandler) WithGroup(string) slog.Handler           { return h }
