// Package validator provides the field rules used by sign-up and generic
// forms: e-mail, username, birthdate, password confirmation, terms acceptance
// and the generic required check, plus an advisory password strength score.
//
// Every exported rule constructor returns a Rule value that couples a boolean
// Check function with a ValidationError describing the failure. Rules are
// evaluated with Apply, which aggregates failures into ValidationErrors, a
// slice type implementing the error interface.
//
// # Architecture
//
// Rules are grouped by concern (`format_rules.go`, `date_rules.go`,
// `password_rules.go`, `comparable_rules.go`, `string_rules.go`). Each
// constructor captures its inputs; there is no package state, so rules are
// pure and goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func and error metadata
//   - ValidationError   – a single failure with a Code and translation key
//   - ValidationErrors  – slice type that implements the error interface
//   - Code              – failure taxonomy (required, format, password_mismatch,
//     terms_not_accepted)
//   - Strength          – advisory password score with tier and fraction
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.PasswordsMatch("confirm_password", password, confirm, false),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// # Date rules
//
// ValidBirthdate takes the reference time explicitly so callers control the
// clock. The upper bound is the reference date with 18 subtracted from the
// year, normalized by time.Date, which keeps calendar semantics on leap days.
package validator
