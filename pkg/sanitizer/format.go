package sanitizer

// BirthdateMaxLength is the length of a complete YYYY-MM-DD value.
const BirthdateMaxLength = 10

// FormatBirthdate truncates s to BirthdateMaxLength characters and appends a
// "-" separator when the value is exactly YYYY or YYYY-MM, so typing digits
// produces YYYY-MM-DD.
func FormatBirthdate(s string) string {
	s = MaxRunes(s, BirthdateMaxLength)
	if yearPrefixRegex.MatchString(s) || yearMonthPrefixRegex.MatchString(s) {
		return s + "-"
	}
	return s
}
