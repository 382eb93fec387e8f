package formstore

import "errors"

var (
	// ErrNotFound is returned for an unknown, expired or evicted instance id.
	ErrNotFound = errors.New("form instance not found")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("form store closed")
)
