package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to bind or serve.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown did not finish in time.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is returned by a second Run on the same Server.
	ErrAlreadyRunning = errors.New("http server already running")
)
