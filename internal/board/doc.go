// Package board is the feedback board domain: users, feedback items, votes
// and comments.
//
// Service is the only entry point for transports. Every write path runs the
// pkg/sanitizer transform for its field first and then the pkg/validator
// rule, so stored text is always sanitized and within bounds. Who is acting
// is passed explicitly as an *Identity; a nil identity means anonymous.
//
// Storage is implemented by the memstore and pgstore subpackages.
package board
