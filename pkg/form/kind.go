package form

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Kind selects the rules and input policy of a field.
type Kind string

const (
	KindEmail           Kind = "email"
	KindUsername        Kind = "username"
	KindBirthdate       Kind = "birthdate"
	KindPassword        Kind = "password"
	KindConfirmPassword Kind = "confirm_password"
	KindTerms           Kind = "terms"
	KindGenericRequired Kind = "generic_required"
)

var kinds = map[Kind]struct{}{
	KindEmail:           {},
	KindUsername:        {},
	KindBirthdate:       {},
	KindPassword:        {},
	KindConfirmPassword: {},
	KindTerms:           {},
	KindGenericRequired: {},
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
	return k, nil
}

// Checkbox reports whether the field carries a checked flag instead of text.
func (k Kind) Checkbox() bool {
	return k == KindTerms
}

// singleton kinds take part in cross-field rules and may appear once per form.
func (k Kind) singleton() bool {
	return k == KindPassword || k == KindConfirmPassword
}

// eager kinds show format errors while the user types; the others wait for
// blur or submit.
func (k Kind) eager() bool {
	return k != KindUsername
}

// sanitize returns the input filter for the kind, or nil when input is free.
func (k Kind) sanitize() func(string) string {
	switch k {
	case KindUsername:
		return sanitizer.Username
	case KindEmail:
		return sanitizer.Email
	case KindBirthdate:
		return sanitizer.Birthdate
	default:
		return nil
	}
}

// counterpart is the kind whose cross-field rule depends on k.
func (k Kind) counterpart() (Kind, bool) {
	switch k {
	case KindPassword:
		return KindConfirmPassword, true
	case KindConfirmPassword:
		return KindPassword, true
	default:
		return "", false
	}
}
