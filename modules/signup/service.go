package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formstore"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Service serves one form definition with live validation over datastar and a
// plain HTML fallback.
type Service struct {
	def        form.Definition
	store      *formstore.Store
	logger     *slog.Logger
	engineOpts []form.Option
	submitter  Submitter
	successURL string
	basePath   string
	onAttach   func(uuid.UUID)
}

// New returns a Service for def. Instances are kept in store.
func New(def form.Definition, store *formstore.Store, opts ...Option) (*Service, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNilStore
	}

	s := &Service{
		def:        def,
		store:      store,
		logger:     slog.Default(),
		successURL: def.SuccessURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.successURL == "" {
		s.successURL = "/"
	}
	s.logger = s.logger.With(logger.Component("signup"), logger.Form(def.Name))
	return s, nil
}

// Handle returns the module router.
//
//	r.Mount("/signup", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	wrap := func(h handler.HandlerFunc) http.HandlerFunc {
		return handler.Wrap(h, handler.WithLogger(s.logger))
	}

	r.Get("/", wrap(s.page))
	r.Post("/submit", wrap(s.submitForm))
	r.Post("/{id}/fields/{field}/{event}", wrap(s.fieldEvent))
	r.Post("/{id}/submit", wrap(s.submitLive))

	return r
}

func (s *Service) attach() (*form.Engine, error) {
	opts := append([]form.Option{form.WithLogger(s.logger)}, s.engineOpts...)
	return form.NewFromDefinition(s.def, opts...)
}

func (s *Service) register(ctx context.Context, e *form.Engine) (uuid.UUID, error) {
	id, err := s.store.Add(e)
	if err != nil {
		return uuid.Nil, storeError(err)
	}
	if s.onAttach != nil {
		s.onAttach(id)
	}
	s.logger.DebugContext(ctx, "form instance attached", logger.Instance(id.String()))
	return id, nil
}

// page attaches a fresh instance and renders the full page.
func (s *Service) page(r *http.Request) handler.Response {
	e, err := s.attach()
	if err != nil {
		return handler.Error(err)
	}
	id, err := s.register(r.Context(), e)
	if err != nil {
		return handler.Error(err)
	}

	var view pageView
	if err := s.store.Do(id, func(e *form.Engine) error {
		view = s.pageView(id, e, e.Initial())
		return nil
	}); err != nil {
		return handler.Error(storeError(err))
	}
	return handler.Templ(pageComponent(view))
}

// fieldEvent applies one change or blur and patches the affected signals.
func (s *Service) fieldEvent(r *http.Request) handler.Response {
	id, err := instanceID(r)
	if err != nil {
		return handler.Error(err)
	}
	event, err := form.ParseEvent(chi.URLParam(r, "event"))
	if err != nil {
		return handler.Error(handler.ErrBadRequest.Wrap(err))
	}
	field := chi.URLParam(r, "field")

	var in inbound
	if err := handler.ReadSignals(r, &in); err != nil {
		return handler.Error(err)
	}

	var diff form.Diff
	err = s.store.Do(id, func(e *form.Engine) error {
		var err error
		diff, err = e.HandleFieldEvent(field, event, rawValue(in.Values[field]))
		return err
	})
	if err != nil {
		return handler.Error(storeError(err))
	}
	return handler.Signals(diffSignals(diff))
}

// submitLive syncs the submitted signal values, runs the submit gate and
// either patches every failure or redirects.
func (s *Service) submitLive(r *http.Request) handler.Response {
	id, err := instanceID(r)
	if err != nil {
		return handler.Error(err)
	}

	var in inbound
	if err := handler.ReadSignals(r, &in); err != nil {
		return handler.Error(err)
	}

	var res form.SubmitResult
	err = s.store.Do(id, func(e *form.Engine) error {
		for _, f := range e.State().Fields() {
			v, ok := in.Values[f.Name()]
			if !ok {
				continue
			}
			if _, err := e.HandleFieldEvent(f.Name(), form.EventBlur, rawValue(v)); err != nil {
				return err
			}
		}

		res = e.Submit()
		if !res.Accepted {
			return nil
		}
		if err := s.deliver(r.Context(), e); err != nil {
			return err
		}
		s.store.Remove(id)
		return nil
	})
	if err != nil {
		return handler.Error(storeError(err))
	}

	if !res.Accepted {
		s.logger.InfoContext(r.Context(), "form submit rejected",
			logger.Instance(id.String()),
			slog.Any("failed_fields", res.Errors.Fields()),
		)
		return handler.Signals(diffSignals(res.Diff))
	}
	return handler.Redirect(s.successURL)
}

// submitForm is the no-JavaScript path: a plain form POST validated in one
// go. A rejected form is re-rendered with every error and a live instance so
// the page keeps validating once scripts load.
func (s *Service) submitForm(r *http.Request) handler.Response {
	if err := r.ParseForm(); err != nil {
		return handler.Error(handler.ErrBadRequest.Wrap(err))
	}

	e, err := s.attach()
	if err != nil {
		return handler.Error(err)
	}

	values := make(map[string]string, len(s.def.Fields))
	for _, d := range s.def.Fields {
		values[d.Name] = r.PostForm.Get(d.Name)
	}
	e.Load(values)

	res := e.Submit()
	if res.Accepted {
		if err := s.deliver(r.Context(), e); err != nil {
			return handler.Error(err)
		}
		return handler.Redirect(s.successURL)
	}

	id, err := s.register(r.Context(), e)
	if err != nil {
		return handler.Error(err)
	}
	var view pageView
	if err := s.store.Do(id, func(e *form.Engine) error {
		view = s.pageView(id, e, res.Diff)
		return nil
	}); err != nil {
		return handler.Error(storeError(err))
	}
	return handler.Templ(pageComponent(view), handler.WithStatus(http.StatusUnprocessableEntity))
}

func (s *Service) deliver(ctx context.Context, e *form.Engine) error {
	if s.submitter == nil {
		s.logger.InfoContext(ctx, "form accepted")
		return nil
	}
	if err := s.submitter.Submit(ctx, e.Name(), e.Values()); err != nil {
		return errors.Join(ErrSubmitFailed, err)
	}
	return nil
}

func instanceID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, handler.ErrNotFound.Wrap(err)
	}
	return id, nil
}

// storeError maps store and engine errors to HTTP errors.
func storeError(err error) error {
	var httpErr handler.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, formstore.ErrNotFound):
		return handler.ErrNotFound.Wrap(err)
	case errors.Is(err, formstore.ErrClosed):
		return handler.ErrServiceUnavailable.Wrap(err)
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrUnknownEvent):
		return handler.ErrBadRequest.Wrap(err)
	default:
		return err
	}
}
