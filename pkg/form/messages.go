package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// Messages is the text shown in error slots and the strength indicator.
// Zero-valued entries in an override fall back to the defaults.
type Messages struct {
	Required         string `yaml:"required"`
	Email            string `yaml:"email"`
	Username         string `yaml:"username"`
	Birthdate        string `yaml:"birthdate"`
	Format           string `yaml:"format"`
	PasswordMismatch string `yaml:"password_mismatch"`
	TermsNotAccepted string `yaml:"terms_not_accepted"`

	StrengthPrompt    string `yaml:"strength_prompt"`
	StrengthWeak      string `yaml:"strength_weak"`
	StrengthMedium    string `yaml:"strength_medium"`
	StrengthGood      string `yaml:"strength_good"`
	StrengthExcellent string `yaml:"strength_excellent"`
}

// DefaultMessages returns the built-in English catalog.
func DefaultMessages() Messages {
	return Messages{
		Required:         "This field is required",
		Email:            "Invalid email format",
		Username:         "Username must be 5-15 characters (Latin letters and digits only)",
		Birthdate:        "Enter a valid birthdate (at least 18 years old)",
		Format:           "Invalid value",
		PasswordMismatch: "Passwords do not match",
		TermsNotAccepted: "You must accept the terms of use",

		StrengthPrompt:    "Enter a password",
		StrengthWeak:      "Weak password",
		StrengthMedium:    "Medium password",
		StrengthGood:      "Good password",
		StrengthExcellent: "Excellent password!",
	}
}

// Merge returns m with every non-empty entry of override applied.
func (m Messages) Merge(override Messages) Messages {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&m.Required, override.Required)
	pick(&m.Email, override.Email)
	pick(&m.Username, override.Username)
	pick(&m.Birthdate, override.Birthdate)
	pick(&m.Format, override.Format)
	pick(&m.PasswordMismatch, override.PasswordMismatch)
	pick(&m.TermsNotAccepted, override.TermsNotAccepted)
	pick(&m.StrengthPrompt, override.StrengthPrompt)
	pick(&m.StrengthWeak, override.StrengthWeak)
	pick(&m.StrengthMedium, override.StrengthMedium)
	pick(&m.StrengthGood, override.StrengthGood)
	pick(&m.StrengthExcellent, override.StrengthExcellent)
	return m
}

// For returns the slot text for a failure on a field of the given kind.
func (m Messages) For(kind Kind, verr validator.ValidationError) string {
	switch verr.Code {
	case validator.CodeRequired:
		return m.Required
	case validator.CodePasswordMismatch:
		return m.PasswordMismatch
	case validator.CodeTermsNotAccepted:
		return m.TermsNotAccepted
	}

	switch kind {
	case KindEmail:
		return m.Email
	case KindUsername:
		return m.Username
	case KindBirthdate:
		return m.Birthdate
	default:
		return m.Format
	}
}

// StrengthLabel returns the label for a strength tier.
func (m Messages) StrengthLabel(tier validator.StrengthTier) string {
	switch tier {
	case validator.TierExcellent:
		return m.StrengthExcellent
	case validator.TierGood:
		return m.StrengthGood
	case validator.TierMedium:
		return m.StrengthMedium
	default:
		return m.StrengthWeak
	}
}
