package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
	"github.com/dmitrymomot/feedbackboard/pkg/validator"
)

var (
	ErrUnknownKind  = errors.New("unknown input kind")
	ErrInvalidInput = errors.New("input is invalid")
)

// inputCheck pairs the sanitizer and validator applied to one kind of
// user input.
type inputCheck struct {
	sanitize func(string) string
	validate func(string) validator.Result
}

func keep(s string) string { return s }

var inputChecks = map[string]inputCheck{
	"username":    {sanitize: sanitizer.Username, validate: validator.Username},
	"email":       {sanitize: sanitizer.Email, validate: validator.Email},
	"password":    {sanitize: keep, validate: validator.Password},
	"title":       {sanitize: sanitizer.Text, validate: validator.Title},
	"description": {sanitize: sanitizer.Text, validate: validator.Description},
	"comment":     {sanitize: sanitizer.Comment, validate: validator.Comment},
}

func inputKinds() []string {
	kinds := make([]string, 0, len(inputChecks))
	for k := range inputChecks {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// CheckInput sanitizes value as kind and validates the result.
func CheckInput(kind, value string) (string, validator.Result, error) {
	c, ok := inputChecks[kind]
	if !ok {
		return "", validator.Result{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, kind, strings.Join(inputKinds(), ", "))
	}
	clean := c.sanitize(value)
	return clean, c.validate(clean), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <value>",
		Short: "Sanitize and validate a single input",
		Long: `Run the same sanitizer and validator the server applies to a form field
and print the outcome. Kinds: ` + strings.Join(inputKinds(), ", ") + `.

Exits with a non-zero status when the value is invalid.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: inputKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			clean, res, err := CheckInput(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sanitized: %s\n", clean)
			fmt.Fprintf(out, "valid: %t\n", res.Valid)
			if !res.Valid {
				fmt.Fprintf(out, "message: %s\n", res.Message)
				return ErrInvalidInput
			}
			return nil
		},
	}
}
