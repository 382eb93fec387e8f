package validator

import "time"

// DateLayout is the only accepted birthdate representation.
const DateLayout = "2006-01-02"

// MinBirthYear is the earliest accepted birth year; January 1st is inclusive.
const MinBirthYear = 1900

// AdultAge is the minimum age in whole calendar years.
const AdultAge = 18

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// BirthdateBounds returns the inclusive [min, max] range for a birthdate given
// the reference time. The maximum keeps the reference month and day and
// subtracts AdultAge from the year, so time.Date normalizes Feb 29 to Mar 1
// when the target year is not a leap year.
func BirthdateBounds(now time.Time) (time.Time, time.Time) {
	minDate := time.Date(MinBirthYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(now.Year()-AdultAge, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return minDate, maxDate
}

// ValidBirthdate validates that value is a YYYY-MM-DD date between 1900-01-01
// and the reference date minus AdultAge years, both inclusive.
func ValidBirthdate(field, value string, now time.Time) Rule {
	minDate, maxDate := BirthdateBounds(now)
	return Rule{
		Check: func() bool {
			date, ok := ParseDate(value)
			if !ok {
				return false
			}
			return !date.Before(minDate) && !date.After(maxDate)
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeFormat,
			Message:        "must be a valid birthdate (at least 18 years old)",
			TranslationKey: "validation.birthdate",
			TranslationValues: map[string]any{
				"field":   field,
				"min":     minDate.Format(DateLayout),
				"max":     maxDate.Format(DateLayout),
				"min_age": AdultAge,
			},
		},
	}
}
