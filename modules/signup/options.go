package signup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Submitter receives the sanitized values of an accepted form. Returning an
// error fails the request and keeps the instance alive for a retry.
type Submitter interface {
	Submit(ctx context.Context, formName string, values map[string]string) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, formName string, values map[string]string) error

func (f SubmitterFunc) Submit(ctx context.Context, formName string, values map[string]string) error {
	return f(ctx, formName, values)
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEngineOptions passes options to every attached engine, after the
// definition's own settings.
func WithEngineOptions(opts ...form.Option) Option {
	return func(s *Service) { s.engineOpts = append(s.engineOpts, opts...) }
}

// WithSubmitter sets the hook that receives accepted values.
func WithSubmitter(sub Submitter) Option {
	return func(s *Service) { s.submitter = sub }
}

// WithSuccessURL overrides the definition's redirect target.
func WithSuccessURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.successURL = url
		}
	}
}

// WithBasePath sets the prefix the router is mounted under, used to build
// the event URLs in the rendered page.
func WithBasePath(prefix string) Option {
	return func(s *Service) { s.basePath = strings.TrimRight(prefix, "/") }
}

// WithAttachHook is called with the id of every new form instance.
func WithAttachHook(fn func(uuid.UUID)) Option {
	return func(s *Service) { s.onAttach = fn }
}
