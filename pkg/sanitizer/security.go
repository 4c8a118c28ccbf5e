package sanitizer

import "html"

// EscapeHTML replaces &, <, >, " and ' with character references
// (&amp; &lt; &gt; &#34; &#39;).
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML decodes character references produced by EscapeHTML.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripTags removes every tag-like substring: a '<', any run of characters
// other than '>', then '>'. Entities are left untouched and a lone '<' without
// a closing '>' survives.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// KeepUsernameChars removes every character outside [A-Za-z0-9_-].
func KeepUsernameChars(s string) string {
	return nonUsernameRegex.ReplaceAllString(s, "")
}
