package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Length bounds, inclusive on both ends.
const (
	PasswordMinLen    = 8
	UsernameMinLen    = 3
	UsernameMaxLen    = 20
	TitleMinLen       = 5
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000
	CommentMinLen     = 1
	CommentMaxLen     = 500
)

// MsgInvalidEmail is returned by Email for malformed addresses.
const MsgInvalidEmail = "Please enter a valid email address"

// emailRegex: local part, '@', domain, '.', tld; none of them may contain
// whitespace or '@'. The class mirrors the browser \s set, which includes
// Unicode spaces, vertical tab and the BOM.
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// IsEmail reports whether s looks like user@domain.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Email validates the address format.
func Email(s string) Result {
	if !IsEmail(s) {
		return Fail(MsgInvalidEmail)
	}
	return Ok()
}

// Password requires at least PasswordMinLen characters.
func Password(s string) Result {
	if utf8.RuneCountInString(s) < PasswordMinLen {
		return Fail(fmt.Sprintf("Password must be at least %d characters long", PasswordMinLen))
	}
	return Ok()
}

// Username requires between UsernameMinLen and UsernameMaxLen characters.
func Username(s string) Result {
	n := utf8.RuneCountInString(s)
	if n < UsernameMinLen || n > UsernameMaxLen {
		return Fail(fmt.Sprintf("Username must be between %d and %d characters", UsernameMinLen, UsernameMaxLen))
	}
	return Ok()
}

// Title requires between TitleMinLen and TitleMaxLen characters.
func Title(s string) Result {
	return lengthBetween("Title", s, TitleMinLen, TitleMaxLen)
}

// Description requires between DescriptionMinLen and DescriptionMaxLen characters.
func Description(s string) Result {
	return lengthBetween("Description", s, DescriptionMinLen, DescriptionMaxLen)
}

// Comment must be non-empty and at most CommentMaxLen characters.
func Comment(s string) Result {
	n := utf8.RuneCountInString(s)
	if n < CommentMinLen {
		return Fail("Comment cannot be empty")
	}
	if n > CommentMaxLen {
		return Fail(fmt.Sprintf("Comment must be %d characters or less", CommentMaxLen))
	}
	return Ok()
}

func lengthBetween(label, s string, min, max int) Result {
	n := utf8.RuneCountInString(s)
	if n < min {
		return Fail(fmt.Sprintf("%s must be at least %d characters long", label, min))
	}
	if n > max {
		return Fail(fmt.Sprintf("%s must be %d characters or less", label, max))
	}
	return Ok()
}
