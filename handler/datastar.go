package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// ReadSignals decodes the datastar signals sent with r into v.
func ReadSignals(r *http.Request, v any) error {
	if err := datastar.ReadSignals(r, v); err != nil {
		return ErrBadRequest.Wrap(err)
	}
	return nil
}

// Signals patches the client signal store with v marshalled as JSON.
// Only valid for datastar requests.
func Signals(v any) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if !IsDataStar(r) {
			return ErrBadRequest.Wrap(ErrNotDataStar)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return datastar.NewSSE(w, r).PatchSignals(data)
	})
}

// PatchOption is an alias for datastar's element patch options.
type PatchOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component replaces.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

type templConfig struct {
	status  int
	patches []PatchOption
}

// TemplOption configures Templ.
type TemplOption func(*templConfig)

// WithStatus sets the status code for plain HTML responses.
func WithStatus(code int) TemplOption {
	return func(c *templConfig) { c.status = code }
}

// WithPatch adds element patch options for datastar responses.
func WithPatch(opts ...PatchOption) TemplOption {
	return func(c *templConfig) { c.patches = append(c.patches, opts...) }
}

// Templ renders c as HTML, or as an element patch for datastar requests.
func Templ(c templ.Component, opts ...TemplOption) Response {
	cfg := templConfig{status: http.StatusOK}
	for _, opt := range opts {
		opt(&cfg)
	}

	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).PatchElementTempl(c, cfg.patches...)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(cfg.status)
		return c.Render(r.Context(), w)
	})
}

// Redirect sends the browser to url: a script patch for datastar requests,
// 303 See Other otherwise.
func Redirect(url string) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if url == "" {
			return ErrInternalServerError.Wrap(errors.New("empty redirect url"))
		}
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).Redirect(url)
		}
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	})
}
