package signup

import "errors"

var (
	// ErrSubmitFailed wraps errors returned by the Submitter.
	ErrSubmitFailed = errors.New("signup: submit hook failed")
	// ErrNilStore is returned by New without a form store.
	ErrNilStore = errors.New("signup: nil form store")
)
