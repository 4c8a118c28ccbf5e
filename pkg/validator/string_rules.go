package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// OneOf validates that value is one of allowed. message overrides the default text when non-empty.
func OneOf(field, value string, allowed []string, message string) Rule {
	if message == "" {
		message = "must be one of: " + strings.Join(allowed, ", ")
	}
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

// Equal validates that value matches other, e.g. a password confirmation.
func Equal(field, value, other, message string) Rule {
	if message == "" {
		message = "values do not match"
	}
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
