package validator

import "regexp"

var (
	// Characters permitted anywhere in an e-mail address typed into the form.
	emailCharsetRegex = regexp.MustCompile(`^[a-zA-Z0-9@._-]+$`)

	// local@domain.tld with an alphabetic TLD of at least two letters.
	emailShapeRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// 5-15 Latin letters or digits, no separators.
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{5,15}$`)
)

// ValidEmail validates an e-mail address in two stages: the value must use only
// the characters the sanitizer lets through, and then match local@domain.tld.
// Checking the charset first keeps validation and input filtering in agreement.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !emailCharsetRegex.MatchString(value) {
				return false
			}
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeFormat,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUsername validates a login of 5 to 15 alphanumeric characters.
func ValidUsername(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return usernameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeFormat,
			Message:        "must be 5-15 characters (latin letters and digits only)",
			TranslationKey: "validation.username",
			TranslationValues: map[string]any{
				"field": field,
				"min":   5,
				"max":   15,
			},
		},
	}
}
