// Package validator classifies user input for the feedback board.
//
// There are two layers.
//
// Input validators (Email, Password, Username, Title, Description and
// Comment) implement the board's length and format rules and all return the
// same Result shape: Valid plus a human-readable Message that is empty when
// the input is acceptable. IsEmail keeps a bare boolean form for callers that
// only need the predicate.
//
//	if res := validator.Title(title); !res.Valid {
//	    return res.Message
//	}
//
// The rule engine lets a service check a whole form in one call. Each Rule
// pairs a Check function with a ValidationError; Apply evaluates all of them
// and aggregates failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Username(username).Rule("username"),
//	    validator.Email(email).Rule("email"),
//	    validator.Equal("confirm_password", confirm, password, "Passwords do not match"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.First(), verrs.Map()["username"], ...
//	}
//
// Lengths are measured in runes and all bounds are inclusive. Every function
// is pure and safe for concurrent use.
package validator
