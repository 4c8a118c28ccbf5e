package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
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
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies transforms in order",
			input: "  <b>HELLO</b>  WORLD  ",
			transforms: []func(string) string{
				sanitizer.StripTags,
				sanitizer.RemoveExtraWhitespace,
				sanitizer.ToLower,
			},
			expected: "hello world",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
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

	title := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.StripTags,
		sanitizer.SingleLine,
	)

	assert.Equal(t, "Dark mode", title("  <b>Dark</b>\nmode  "))
	assert.Equal(t, "", title(""))
}
