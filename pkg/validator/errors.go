package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrPasswordsMismatch is returned when the confirmation differs from the password.
	ErrPasswordsMismatch = errors.New("passwords do not match")

	// ErrTermsNotAccepted is returned when the terms checkbox is not checked.
	ErrTermsNotAccepted = errors.New("terms not accepted")
)

// Code classifies a validation failure.
type Code string

const (
	// CodeRequired marks a required field without a value.
	CodeRequired Code = "required"
	// CodeFormat marks a value that does not satisfy its kind's format.
	CodeFormat Code = "format"
	// CodePasswordMismatch marks a confirmation that differs from the password.
	CodePasswordMismatch Code = "password_mismatch"
	// CodeTermsNotAccepted marks an unchecked terms checkbox.
	CodeTermsNotAccepted Code = "terms_not_accepted"
)

// Err maps a code to its sentinel error so callers can use errors.Is.
func (c Code) Err() error {
	switch c {
	case CodeRequired:
		return ErrFieldRequired
	case CodeFormat:
		return ErrInvalidFormat
	case CodePasswordMismatch:
		return ErrPasswordsMismatch
	case CodeTermsNotAccepted:
		return ErrTermsNotAccepted
	default:
		return ErrValidationFailed
	}
}
