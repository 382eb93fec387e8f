package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordMinLength is the length criterion of the strength score.
const PasswordMinLength = 8

// MaxStrengthScore is the number of strength criteria.
const MaxStrengthScore = 4

// StrengthTier is the four-level label of a strength score.
type StrengthTier string

const (
	TierWeak      StrengthTier = "weak"
	TierMedium    StrengthTier = "medium"
	TierGood      StrengthTier = "good"
	TierExcellent StrengthTier = "excellent"
)

// Strength is an advisory password rating. It never blocks submission.
type Strength struct {
	Score    int
	Tier     StrengthTier
	Fraction float64
}

// PasswordStrength counts satisfied criteria: length >= 8, an uppercase
// letter, a digit and a symbol outside [A-Za-z0-9]. Length counts runes.
func PasswordStrength(password string) Strength {
	score := 0
	if utf8.RuneCountInString(password) >= PasswordMinLength {
		score++
	}
	if uppercaseRegex.MatchString(password) {
		score++
	}
	if digitRegex.MatchString(password) {
		score++
	}
	if symbolRegex.MatchString(password) {
		score++
	}

	return Strength{
		Score:    score,
		Tier:     tierFor(score),
		Fraction: float64(score) / MaxStrengthScore,
	}
}

func tierFor(score int) StrengthTier {
	switch {
	case score >= 4:
		return TierExcellent
	case score == 3:
		return TierGood
	case score == 2:
		return TierMedium
	default:
		return TierWeak
	}
}
