package board

import "context"

// Storage persists board data. Implementations return ErrNotFound for
// missing rows and ErrDuplicate for unique violations. CreateUser reports
// ErrDuplicateEmail or ErrDuplicateUsername when it can tell which one hit.
type Storage interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	CreateFeedback(ctx context.Context, fb Feedback) error
	GetFeedback(ctx context.Context, id string) (Feedback, error)
	// ListFeedback returns matching items ordered by vote count descending,
	// newest first among equal counts.
	ListFeedback(ctx context.Context, f Filter) ([]Feedback, error)
	// DeleteFeedback also removes the item's votes and comments.
	DeleteFeedback(ctx context.Context, id string) error
	// ToggleVote adds the user's vote if absent and removes it otherwise,
	// returning the new state and count.
	ToggleVote(ctx context.Context, feedbackID, userID string) (voted bool, count int, err error)

	CreateComment(ctx context.Context, c Comment) error
	// ListComments returns comments oldest first.
	ListComments(ctx context.Context, feedbackID string) ([]Comment, error)
}
