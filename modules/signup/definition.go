package signup

import (
	_ "embed"

	"github.com/dmitrymomot/formkit/pkg/form"
)

//go:embed signup.yaml
var defaultDefinition []byte

// DefaultDefinition returns the built-in sign-up form.
func DefaultDefinition() (form.Definition, error) {
	return form.ParseDefinition(defaultDefinition)
}
