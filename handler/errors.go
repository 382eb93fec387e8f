package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar indicates a datastar-only response was rendered for a plain request
	ErrNotDataStar = errors.New("datastar request required")
)

// HTTPError is an error with a status code and a message key. The key is
// what clients see; the wrapped cause only goes to logs.
type HTTPError struct {
	Code  int
	Key   string
	cause error
}

func (e HTTPError) Error() string {
	if e.cause != nil {
		return e.Key + ": " + e.cause.Error()
	}
	return e.Key
}

func (e HTTPError) Unwrap() error { return e.cause }

// Is matches another HTTPError by code and key, ignoring the cause.
func (e HTTPError) Is(target error) bool {
	var t HTTPError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Key == e.Key
}

// Wrap attaches cause to a copy of e.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.cause = cause
	return e
}

// NewHTTPError creates an HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not_found")
	ErrUnprocessableEntity = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)
