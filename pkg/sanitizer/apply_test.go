package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sillynames/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  otter  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "otter",
		},
		{
			name:  "applies transforms in sequence",
			input: "  SLEEPY   PANDA  ",
			transforms: []func(string) string{
				sanitizer.RemoveExtraWhitespace,
				sanitizer.ToLower,
			},
			expected: "sleepy panda",
		},
		{
			name:       "handles empty transforms slice",
			input:      "happy otter",
			transforms: []func(string) string{},
			expected:   "happy otter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.RemoveExtraWhitespace,
		sanitizer.ToTitle,
	)

	assert.Equal(t, "Happy Otter", clean("  happy\t\totter "))
	assert.Equal(t, "Sleepy Panda", clean("SLEEPY PANDA"))
}

func TestRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain word", "Otter", "Otter"},
		{"fixed width padding", "Otter      ", "Otter"},
		{"byte order mark", "\ufeffHappy", "Happy"},
		{"control characters", "Pan\x00da\x07", "Panda"},
		{"windows line ending", "Sleepy\r", "Sleepy"},
		{"inner whitespace", "Great   Horned  Owl", "Great Horned Owl"},
		{"blank", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Record(tt.input))
		})
	}
}
