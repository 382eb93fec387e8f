// Package sanitizer filters and reformats raw form input before it is
// validated.
//
// Sanitization restricts what can be typed, independent of validity: the
// username filter drops everything outside [A-Za-z0-9], the e-mail filter
// drops everything outside [A-Za-z0-9@._-], and the birthdate formatter
// truncates input to ten characters and appends the "-" separator after the
// YYYY and YYYY-MM prefixes.
//
// Helpers are plain func(string) string values that can be chained with the
// Apply and Compose higher-order helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.KeepEmailChars,
//	    func(s string) string { return sanitizer.MaxRunes(s, 254) },
//	)
//
//	email := clean("jöhn doe@example.com") // "jhndoe@example.com"
//
// The predefined pipelines Username, Email and Birthdate are what the form
// engine runs on every change event. Every helper is idempotent on its own
// output, so re-sanitizing a stored value never changes it.
//
// # Error handling
//
// None of the helpers returns an error; invalid input is filtered, never
// rejected. Rejection is the validator's job.
//
// The package has no global mutable state and is safe for concurrent use.
package sanitizer
