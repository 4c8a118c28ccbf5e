package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Username("johndoe").Rule("username"),
			validator.Email("john@example.com").Rule("email"),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Username("jd").Rule("username"),
			validator.Email("nope").Rule("email"),
			validator.Password("longenough").Rule("password"),
			validator.Equal("confirm_password", "a", "b", "Passwords do not match"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "username", verrs[0].Field)
		assert.Equal(t, "email", verrs[1].Field)
		assert.Equal(t, "confirm_password", verrs[2].Field)
		assert.Equal(t, "Username must be between 3 and 20 characters", verrs.First())
		assert.Equal(t, []string{"Passwords do not match"}, verrs.Map()["confirm_password"])
		assert.NotContains(t, verrs.Map(), "password")
		assert.Contains(t, err.Error(), "email: Please enter a valid email address")
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("submit: %w", validator.Apply(validator.Comment("").Rule("comment")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, map[string][]string{"comment": {"Comment cannot be empty"}}, verrs.Map())
}

func TestResultRule(t *testing.T) {
	t.Parallel()

	rule := validator.Title("Hi").Rule("title")
	assert.False(t, rule.Check())
	assert.Equal(t, "title", rule.Error.Field)
	assert.Equal(t, "Title must be at least 5 characters long", rule.Error.Message)
	assert.Equal(t, "validation.title", rule.Error.TranslationKey)
}

func TestValidationErrorsEmpty(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	assert.True(t, verrs.IsEmpty())
	assert.Equal(t, "validation failed", verrs.Error())
	assert.Equal(t, "", verrs.First())

	verrs.Add(validator.ValidationError{Field: "title", Message: "bad"})
	assert.False(t, verrs.IsEmpty())
}

func TestRuleWithMessage(t *testing.T) {
	t.Parallel()

	base := validator.MinLenString("password", "short", validator.PasswordMinLen)
	custom := base.WithMessage("Please enter your password")

	assert.Equal(t, "Please enter your password", custom.Error.Message)
	assert.Equal(t, "must be at least 8 characters long", base.Error.Message)
	assert.False(t, custom.Check())
}
