package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Alphanumeric filtering
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Characters outside the e-mail input charset
	nonEmailCharRegex = regexp.MustCompile(`[^a-zA-Z0-9@._-]`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Birthdate prefixes that get a trailing separator
	yearPrefixRegex      = regexp.MustCompile(`^\d{4}$`)
	yearMonthPrefixRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
)
