package sanitizer

var (
	usernamePipeline = Compose(Trim, StripTags, KeepUsernameChars)
	emailPipeline    = Compose(TrimToLower, StripTags, Trim)
	textPipeline     = Compose(Trim, StripTags, EscapeHTML)
)

// Username trims, strips tag-like substrings and then drops every character
// outside [A-Za-z0-9_-]. Tags go first, so "<script>x</script>" loses the
// brackets as whole tokens while the text between them survives filtered.
func Username(s string) string {
	return usernamePipeline(s)
}

// Email trims, lowercases and strips tag-like substrings. '@' and '.' are
// preserved. Whitespace uncovered by tag removal is trimmed again so that
// Email(Email(s)) == Email(s).
func Email(s string) string {
	return emailPipeline(s)
}

// Text trims, strips tag-like substrings and escapes any markup characters
// left behind, so the result can be stored as HTML-safe text.
func Text(s string) string {
	return textPipeline(s)
}

// Comment applies the same rules as Text.
func Comment(s string) string {
	return Text(s)
}
