// Package sanitizer normalises raw user input before it is validated or
// stored by the feedback board.
//
// The package exposes one entry point per input kind:
//
//   - Username – trims, strips tag-like substrings, keeps only
//     [A-Za-z0-9_-].
//   - Email – trims, lowercases and strips tag-like substrings.
//   - Text and Comment – trim, strip tag-like substrings and HTML-escape
//     whatever markup characters are left.
//
// The building blocks (Trim, ToLower, StripTags, KeepUsernameChars,
// EscapeHTML, …) are exported as well and can be chained with Apply and
// Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.StripTags,
//	    sanitizer.SingleLine,
//	)
//
//	title := clean("  <b>Dark</b>\nmode  ") // "Dark mode"
//
// # Error handling
//
// None of the helpers returns an error. Every function is total over strings
// and returns an empty string for empty input.
//
// # Security
//
// Tag stripping uses the naive `<[^>]*>` pattern and can be bypassed with
// malformed or nested markup. Text and Comment escape the remaining markup
// characters, but templates must still escape on output; the sanitizer is a
// normaliser, not an XSS boundary.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
