package board

import (
	"time"

	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
)

type Category string

const (
	CategoryBug         Category = "bug"
	CategoryFeature     Category = "feature"
	CategoryEnhancement Category = "enhancement"
	CategoryUIUX        Category = "ui-ux"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryBug, CategoryFeature, CategoryEnhancement, CategoryUIUX}

func (c Category) Valid() bool {
	switch c {
	case CategoryBug, CategoryFeature, CategoryEnhancement, CategoryUIUX:
		return true
	}
	return false
}

func (c Category) Label() string {
	return formatter.Category(string(c))
}

type Status string

const (
	StatusPlanned     Status = "planned"
	StatusInProgress  Status = "in-progress"
	StatusCompleted   Status = "completed"
	StatusUnderReview Status = "under-review"
)

var Statuses = []Status{StatusPlanned, StatusInProgress, StatusCompleted, StatusUnderReview}

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusUnderReview:
		return true
	}
	return false
}

func (s Status) Label() string {
	return formatter.Status(string(s))
}

type User struct {
	ID           string    `json:"id" yaml:"id"`
	Username     string    `json:"username" yaml:"username"`
	Email        string    `json:"email" yaml:"email"`
	PasswordHash string    `json:"-" yaml:"password_hash"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// Feedback is a submitted item. Title and Description hold sanitized,
// HTML-escaped text.
type Feedback struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Category    Category  `json:"category" yaml:"category"`
	Status      Status    `json:"status" yaml:"status"`
	UserID      string    `json:"user_id" yaml:"user_id"`
	Username    string    `json:"username" yaml:"username"`
	VoteCount   int       `json:"vote_count" yaml:"vote_count"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Comment is a remark on a feedback item. Text holds sanitized,
// HTML-escaped text.
type Comment struct {
	ID         string    `json:"id" yaml:"id"`
	FeedbackID string    `json:"feedback_id" yaml:"feedback_id"`
	UserID     string    `json:"user_id" yaml:"user_id"`
	Username   string    `json:"username" yaml:"username"`
	Text       string    `json:"text" yaml:"text"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Identity is the signed-in user acting on the board.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username, Email: u.Email}
}

type VoteAction string

const (
	VoteAdded   VoteAction = "voted"
	VoteRemoved VoteAction = "unvoted"
)

type VoteResult struct {
	Action    VoteAction `json:"action"`
	VoteCount int        `json:"vote_count"`
}
