package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredChecked validates that a checkbox-like flag is set.
func RequiredChecked(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
