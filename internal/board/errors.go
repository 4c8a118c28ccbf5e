package board

import (
	"errors"
	"fmt"
)

// Storage errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")

	// CreateUser wraps ErrDuplicate with the field that collided.
	ErrDuplicateEmail    = fmt.Errorf("%w: email", ErrDuplicate)
	ErrDuplicateUsername = fmt.Errorf("%w: username", ErrDuplicate)
)

// Service errors. Messages are shown to users as they are.
var (
	ErrUnauthenticated    = errors.New("You must be logged in to do that")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("An account with this email already exists")
	ErrUsernameTaken      = errors.New("This username is already taken")
	ErrFeedbackNotFound   = errors.New("Feedback not found")
	ErrForbidden          = errors.New("You can only delete your own feedback")
)
