package form

import "errors"

// Package-level errors. Validation failures are never reported through these;
// they describe misuse of the engine or a malformed form definition.
var (
	// ErrUnknownField is returned when an event names a field the form does not declare.
	ErrUnknownField = errors.New("unknown form field")

	// ErrUnknownEvent is returned for an event kind other than change or blur.
	ErrUnknownEvent = errors.New("unknown field event")

	// ErrNoFields is returned when a form declares no fields.
	ErrNoFields = errors.New("form declares no fields")

	// ErrEmptyFieldName is returned when a field descriptor has no name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two descriptors share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnsupportedKind is returned for a field kind the engine has no rules for.
	ErrUnsupportedKind = errors.New("unsupported field kind")

	// ErrDuplicateKind is returned when a form declares more than one password
	// or confirmation field.
	ErrDuplicateKind = errors.New("field kind may appear only once")

	// ErrInvalidDefinition wraps failures to decode a form definition.
	ErrInvalidDefinition = errors.New("invalid form definition")
)
