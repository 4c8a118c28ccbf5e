package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    string
		value   string
		clean   string
		valid   bool
		message string
	}{
		{kind: "username", value: "  john.doe! ", clean: "johndoe", valid: true},
		{kind: "username", value: "<b>ab</b>", clean: "ab", message: "Username must be between 3 and 20 characters"},
		{kind: "email", value: " John@Example.COM ", clean: "john@example.com", valid: true},
		{kind: "email", value: "john@example", clean: "john@example", message: "Please enter a valid email address"},
		{kind: "password", value: " secret", clean: " secret", message: "Password must be at least 8 characters long"},
		{kind: "title", value: "Dark <i>mode</i> & more", clean: "Dark mode &amp; more", valid: true},
		{kind: "description", value: "short", clean: "short", message: "Description must be at least 10 characters long"},
		{kind: "comment", value: "<p></p>", clean: "", message: "Comment cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.value, func(t *testing.T) {
			t.Parallel()

			clean, res, err := cli.CheckInput(tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.clean, clean)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
		})
	}

	_, _, err := cli.CheckInput("phone", "123")
	assert.ErrorIs(t, err, cli.ErrUnknownKind)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "check", "email", " A@B.CO ")
	require.NoError(t, err)
	assert.Equal(t, "sanitized: a@b.co\nvalid: true\n", out)

	out, err = run(t, "check", "title", "Hi")
	assert.ErrorIs(t, err, cli.ErrInvalidInput)
	assert.Equal(t, "sanitized: Hi\nvalid: false\nmessage: Title must be at least 5 characters long\n", out)

	_, err = run(t, "check", "email")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "feedbackboard ")
	assert.Contains(t, out, "commit: ")
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := run(t, "nonexistent-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
