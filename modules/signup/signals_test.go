package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRawValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", rawValue(nil))
	assert.Equal(t, "john", rawValue("john"))
	assert.Equal(t, "true", rawValue(true))
	assert.Equal(t, "false", rawValue(false))
	assert.Equal(t, "1990", rawValue(float64(1990)))
}

func TestDiffSignals(t *testing.T) {
	t.Parallel()

	got := diffSignals(form.Diff{
		Fields: []form.FieldUpdate{
			{Name: "login", Display: form.DisplayValid, Value: "johndoe", Rewritten: true},
			{Name: "email", Display: form.DisplayInvalid, Message: "Invalid email format", Attention: true},
		},
		Submittable: false,
		Strength:    &form.StrengthUpdate{Score: 2, Tier: validator.TierMedium, Fraction: 0.5, Label: "Medium password"},
		Focus:       "email",
	})

	assert.Equal(t, map[string]any{
		"errors":        map[string]any{"login": "", "email": "Invalid email format"},
		"valid":         map[string]any{"login": true, "email": false},
		"invalid":       map[string]any{"login": false, "email": true},
		"attention":     map[string]any{"login": false, "email": true},
		"values":        map[string]any{"login": "johndoe"},
		"submitEnabled": false,
		"strength":      strengthSignal{Score: 2, Tier: "medium", Fraction: 0.5, Label: "Medium password"},
		"focus":         "email",
	}, got)
}

func TestDiffSignals_OmitsEmptyParts(t *testing.T) {
	t.Parallel()

	got := diffSignals(form.Diff{Submittable: true})
	assert.NotContains(t, got, "values")
	assert.NotContains(t, got, "strength")
	assert.NotContains(t, got, "focus")
	assert.Equal(t, true, got["submitEnabled"])
}
