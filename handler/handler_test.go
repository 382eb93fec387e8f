package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func datastarRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func hello(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="hello">Hello, `+templ.EscapeString(name)+`</p>`)
		return err
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	assert.True(t, handler.IsDataStar(datastarRequest(http.MethodPost, "/", "")))
	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))

	ct := httptest.NewRequest(http.MethodPost, "/", nil)
	ct.Header.Set("Content-Type", "application/x-datastar")
	assert.True(t, handler.IsDataStar(ct))
}

func TestReadSignals(t *testing.T) {
	t.Parallel()

	var got struct {
		Value string `json:"value"`
	}
	req := datastarRequest(http.MethodPost, "/", `{"value":"john"}`)
	require.NoError(t, handler.ReadSignals(req, &got))
	assert.Equal(t, "john", got.Value)

	bad := datastarRequest(http.MethodPost, "/", `{"value":`)
	err := handler.ReadSignals(bad, &got)
	assert.ErrorIs(t, err, handler.ErrBadRequest)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := handler.Signals(map[string]any{"submitEnabled": true}).Render(rec, datastarRequest(http.MethodPost, "/", ""))
	require.NoError(t, err)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `{"submitEnabled":true}`)

	err = handler.Signals(map[string]any{}).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.ErrorIs(t, err, handler.ErrNotDataStar)
	assert.ErrorIs(t, err, handler.ErrBadRequest)
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain request renders html with status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.Templ(hello("<x>"), handler.WithStatus(http.StatusUnprocessableEntity)).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `<p id="hello">Hello, &lt;x&gt;</p>`, rec.Body.String())
	})

	t.Run("datastar request patches elements", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.Templ(hello("john"), handler.WithPatch(handler.WithTarget("#hello"))).
			Render(rec, datastarRequest(http.MethodGet, "/", ""))
		require.NoError(t, err)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#hello")
		assert.Contains(t, body, "Hello, john")
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/welcome").Render(rec, httptest.NewRequest(http.MethodPost, "/submit", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/welcome", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/welcome").Render(rec, datastarRequest(http.MethodPost, "/submit", "")))
	assert.Contains(t, rec.Body.String(), "/welcome")

	err := handler.Redirect("").Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.ErrorIs(t, err, handler.ErrInternalServerError)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("renders response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return handler.Templ(hello("john"))
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hello, john")
	})

	t.Run("http error keeps status and key", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return handler.Error(handler.ErrNotFound.Wrap(errors.New("instance expired")))
		}, handler.WithLogger(quiet()))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found\n", rec.Body.String())
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return handler.Error(errors.New("boom"))
		}, handler.WithLogger(quiet()))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("datastar error becomes signal", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return handler.Error(handler.ErrNotFound)
		}, handler.WithLogger(quiet()))
		rec := httptest.NewRecorder()
		h(rec, datastarRequest(http.MethodPost, "/", ""))
		assert.Contains(t, rec.Body.String(), `{"error":"not_found"}`)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(*http.Request) handler.Response { return nil },
			handler.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusTeapot)
			}))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := handler.ErrServiceUnavailable.Wrap(cause)
	assert.ErrorIs(t, err, handler.ErrServiceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, handler.ErrNotFound)
	assert.Equal(t, "service_unavailable: db down", err.Error())
	assert.Equal(t, "bad_request", handler.NewHTTPError(http.StatusBadRequest, "bad_request").Error())
}
