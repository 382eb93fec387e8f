package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace trims s and folds inner whitespace runs into one space.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// KeepAlphanumeric removes everything except ASCII letters and digits.
func KeepAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// KeepEmailChars removes everything outside [A-Za-z0-9@._-].
func KeepEmailChars(s string) string {
	return nonEmailCharRegex.ReplaceAllString(s, "")
}

// MaxRunes truncates s to at most n runes. Non-positive n yields "".
func MaxRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
