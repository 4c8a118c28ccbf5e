package sanitizer_test

import (
	"regexp"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
)

var usernameCharset = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// markupish generates strings dense in brackets, quotes and whitespace.
func markupish() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.String(),
		rapid.StringMatching(`[ <>/a-zA-Z0-9@."'&_\-\t]{0,40}`),
	)
}

func TestUsernameCharsetProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := markupish().Draw(rt, "input")
		out := sanitizer.Username(in)
		if !usernameCharset.MatchString(out) {
			rt.Fatalf("Username(%q) = %q contains disallowed characters", in, out)
		}
	})
}

func TestEmailIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := markupish().Draw(rt, "input")
		once := sanitizer.Email(in)
		twice := sanitizer.Email(once)
		if once != twice {
			rt.Fatalf("Email not idempotent for %q: %q != %q", in, once, twice)
		}
	})
}

func TestTextHasNoMarkupProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := markupish().Draw(rt, "input")
		out := sanitizer.Text(in)
		if strings.ContainsAny(out, `<>"'`) {
			rt.Fatalf("Text(%q) = %q still contains markup characters", in, out)
		}
		if sanitizer.UnescapeHTML(out) != sanitizer.StripTags(sanitizer.Trim(in)) {
			rt.Fatalf("Text(%q) = %q does not decode back to the stripped input", in, out)
		}
	})
}
