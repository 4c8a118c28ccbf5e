package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/feedbackboard/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "accepts valid email", input: "test@example.com", valid: true},
		{name: "accepts subdomains", input: "john.doe@mail.example.co.uk", valid: true},
		{name: "rejects missing @", input: "testexample.com", valid: false},
		{name: "rejects missing domain", input: "test@", valid: false},
		{name: "rejects missing tld", input: "test@example", valid: false},
		{name: "rejects spaces", input: "te st@example.com", valid: false},
		{name: "rejects non-breaking space", input: "test@exa\u00a0mple.com", valid: false},
		{name: "rejects two @", input: "a@b@example.com", valid: false},
		{name: "rejects empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, validator.IsEmail(tt.input))

			res := validator.Email(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Message)
			} else {
				assert.Equal(t, validator.MsgInvalidEmail, res.Message)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid password", func(t *testing.T) {
		t.Parallel()
		res := validator.Password("password123")
		assert.True(t, res.Valid)
		assert.Equal(t, "", res.Message)
	})

	t.Run("accepts exactly 8 characters", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Password("12345678").Valid)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		res := validator.Password("short")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Message, "8 characters")
	})
}

func TestUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "accepts valid username", input: "testuser", valid: true},
		{name: "rejects too short", input: "ab", valid: false},
		{name: "accepts minimum", input: "abc", valid: true},
		{name: "accepts maximum", input: strings.Repeat("a", 20), valid: true},
		{name: "rejects too long", input: strings.Repeat("a", 21), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.Username(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Contains(t, res.Message, "3 and 20")
			}
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "accepts valid title", input: "Add dark mode support", valid: true},
		{name: "accepts minimum boundary", input: "12345", valid: true},
		{name: "accepts maximum boundary", input: strings.Repeat("a", 100), valid: true},
		{name: "rejects too short", input: "Hi", valid: false, message: "5 characters"},
		{name: "rejects too long", input: strings.Repeat("a", 101), valid: false, message: "100 characters"},
		{name: "counts runes not bytes", input: "ééééé", valid: true},
		{name: "astral characters count once", input: "😀😀😀", valid: false, message: "5 characters"},
		{name: "five astral characters reach the minimum", input: "😀😀😀😀😀", valid: true},
		{name: "astral characters up to maximum", input: strings.Repeat("😀", 100), valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.Title(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Message)
			} else {
				assert.Contains(t, res.Message, tt.message)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "accepts valid description", input: "The login button appears misaligned", valid: true},
		{name: "accepts minimum boundary", input: strings.Repeat("a", 10), valid: true},
		{name: "accepts maximum boundary", input: strings.Repeat("a", 1000), valid: true},
		{name: "rejects too short", input: "Too short", valid: false, message: "10 characters"},
		{name: "rejects too long", input: strings.Repeat("a", 1001), valid: false, message: "1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.Description(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Contains(t, res.Message, tt.message)
			}
		})
	}
}

func TestComment(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid comment", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Comment("This is a great idea!").Valid)
	})

	t.Run("accepts single character", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Comment("a").Valid)
	})

	t.Run("accepts maximum boundary", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Comment(strings.Repeat("a", 500)).Valid)
	})

	t.Run("rejects empty comment", func(t *testing.T) {
		t.Parallel()
		res := validator.Comment("")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Message, "cannot be empty")
	})

	t.Run("rejects too long comment", func(t *testing.T) {
		t.Parallel()
		res := validator.Comment(strings.Repeat("a", 501))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Message, "500 characters")
	})
}
