package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Username filtering
	nonUsernameRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)
