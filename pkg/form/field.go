package form

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Descriptor declares a field at attach time.
type Descriptor struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Required bool   `yaml:"required"`
	Label    string `yaml:"label,omitempty"`
}

// State is the validity of a field's current value.
type State int

const (
	StateUnvalidated State = iota
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// Display is what the field's error slot and marker currently show.
type Display int

const (
	DisplayNone Display = iota
	DisplayValid
	DisplayInvalid
)

func (d Display) String() string {
	switch d {
	case DisplayValid:
		return "valid"
	case DisplayInvalid:
		return "invalid"
	default:
		return ""
	}
}

// Field is one declared input with its value and validation state.
// Fields are owned by the engine; callers receive copies.
type Field struct {
	desc    Descriptor
	value   string
	checked bool
	touched bool
	state   State
	failure validator.ValidationError
	display Display
	slot    string
}

func (f Field) Name() string     { return f.desc.Name }
func (f Field) Kind() Kind       { return f.desc.Kind }
func (f Field) Required() bool   { return f.desc.Required }
func (f Field) Label() string    { return f.desc.Label }
func (f Field) Value() string    { return f.value }
func (f Field) Checked() bool    { return f.checked }
func (f Field) Touched() bool    { return f.touched }
func (f Field) State() State     { return f.state }
func (f Field) Display() Display { return f.display }

// Slot is the error text currently shown, empty unless Display is invalid.
func (f Field) Slot() string { return f.slot }

// Failure returns the last failing rule when State is invalid.
func (f Field) Failure() (validator.ValidationError, bool) {
	return f.failure, f.state == StateInvalid
}

// Empty reports whether the field has no value: unchecked for checkboxes,
// blank after trimming otherwise.
func (f Field) Empty() bool {
	if f.desc.Kind.Checkbox() {
		return !f.checked
	}
	return strings.TrimSpace(f.value) == ""
}

func (f Field) snapshotValue() FieldValue {
	return FieldValue{Kind: f.desc.Kind, Text: f.value, Checked: f.checked}
}

// ParseChecked interprets a raw checkbox value.
func ParseChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "true", "yes", "checked":
		return true
	default:
		return false
	}
}
