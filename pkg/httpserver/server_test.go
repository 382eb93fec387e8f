package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

func startServer(t *testing.T, h http.Handler) (*httpserver.Server, context.CancelFunc, <-chan error) {
	t.Helper()

	srv := httpserver.New(httpserver.Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("server exited early: %v", err)
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}
	return srv, cancel, done
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()

	srv, cancel, done := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer cancel()

	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunTwice(t *testing.T) {
	t.Parallel()

	srv, cancel, done := startServer(t, nil)
	defer func() {
		cancel()
		<-done
	}()

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.Config{Addr: ln.Addr().String()})
	err = srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.Nil(t, srv.Addr())
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []httpserver.Check
		code   int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []httpserver.Check{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{"not ready", []httpserver.Check{
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("store closed") },
		}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.HealthHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
