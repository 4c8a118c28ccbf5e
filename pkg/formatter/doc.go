// Package formatter turns stored codes and timestamps into display strings
// for the feedback board.
//
// Dates are rendered in US English with an abbreviated month, numeric day
// and year ("Dec 1, 2024"); DateTime adds a two-digit 12-hour clock
// ("Dec 1, 2024, 10:30 AM"). Timestamps that cannot be parsed render as
// "Invalid Date" instead of failing.
//
// Category and Status map the board's codes to labels and return unknown
// codes unchanged. Votes pluralises and groups vote counts using
// golang.org/x/text.
//
// The package-level functions use a UTC formatter. Build a Formatter with
// WithLocation to render in another zone:
//
//	loc, _ := time.LoadLocation("America/New_York")
//	f := formatter.New(formatter.WithLocation(loc))
//	f.DateTime("2024-12-01T10:30:00Z") // "Dec 1, 2024, 05:30 AM"
//
// All functions are pure and safe for concurrent use.
package formatter
