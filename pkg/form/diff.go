package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// FieldUpdate describes how one field must be rendered after an event.
type FieldUpdate struct {
	Name    string
	Kind    Kind
	State   State
	Code    validator.Code
	Display Display
	// Message is the error slot text; empty unless Display is invalid.
	Message string
	// Value is the stored value after sanitization. Rewritten is set when it
	// differs from the raw input and must be echoed back to the input.
	Value     string
	Rewritten bool
	// Attention asks the adapter to re-trigger the transient invalid animation.
	Attention bool
}

// StrengthUpdate feeds the optional password strength indicator.
type StrengthUpdate struct {
	Score    int
	Tier     validator.StrengthTier
	Fraction float64
	Label    string
}

// Diff is the outcome of one event: the fields to re-render, the submit gate
// and the optional strength indicator. Fields not listed keep their display.
type Diff struct {
	Fields        []FieldUpdate
	Submittable   bool
	SubmitChanged bool
	Strength      *StrengthUpdate
	// Focus names the first failing field after a rejected submit.
	Focus string
}

// Field returns the update for the named field, if the diff carries one.
func (d Diff) Field(name string) (FieldUpdate, bool) {
	for _, u := range d.Fields {
		if u.Name == name {
			return u, true
		}
	}
	return FieldUpdate{}, false
}
