package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestFormatBirthdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"partial year untouched", "199", "199"},
		{"year gets separator", "1990", "1990-"},
		{"year with separator untouched", "1990-", "1990-"},
		{"partial month untouched", "1990-0", "1990-0"},
		{"month gets separator", "1990-05", "1990-05-"},
		{"complete date untouched", "1990-05-17", "1990-05-17"},
		{"overlong input truncated", "1990-05-1799", "1990-05-17"},
		{"truncation to year-month adds nothing", "1990-05-17-extra", "1990-05-17"},
		{"non-digit year untouched", "19a0", "19a0"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatBirthdate(tt.input))
		})
	}
}
