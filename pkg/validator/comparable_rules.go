package validator

// PasswordsMatch validates the confirmation against the password.
// Both empty passes, both non-empty passes when equal. When exactly one side
// is empty the rule passes unless strict is set; the required rule is what
// catches a missing confirmation in lenient mode.
func PasswordsMatch(field, password, confirm string, strict bool) Rule {
	return Rule{
		Check: func() bool {
			if password == "" || confirm == "" {
				if strict {
					return password == confirm
				}
				return true
			}
			return password == confirm
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodePasswordMismatch,
			Message:        "passwords do not match",
			TranslationKey: "validation.password_mismatch",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// TermsAccepted validates that the terms checkbox is checked.
func TermsAccepted(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeTermsNotAccepted,
			Message:        "terms must be accepted",
			TranslationKey: "validation.terms",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
