package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestKeepAlphanumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"johndoe", "johndoe"},
		{"john_doe", "johndoe"},
		{"john doe-2000!", "johndoe2000"},
		{"иван123", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.KeepAlphanumeric(tt.input))
		})
	}
}

func TestKeepEmailChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"user@example.com", "user@example.com"},
		{"first.last-1_x@mail.org", "first.last-1_x@mail.org"},
		{"user+tag@example.com", "usertag@example.com"},
		{" user @ example.com ", "user@example.com"},
		{"юзер@example.com", "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.KeepEmailChars(tt.input))
		})
	}
}

func TestMaxRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sanitizer.MaxRunes("abcdef", 3))
	assert.Equal(t, "abc", sanitizer.MaxRunes("abc", 10))
	assert.Equal(t, "дат", sanitizer.MaxRunes("дата", 3))
	assert.Equal(t, "", sanitizer.MaxRunes("abc", 0))
	assert.Equal(t, "", sanitizer.MaxRunes("abc", -1))
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John Smith", sanitizer.CollapseWhitespace("  John \t\n Smith "))
	assert.Equal(t, "", sanitizer.CollapseWhitespace("   "))
}
