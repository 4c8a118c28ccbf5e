package api

import (
	"time"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
)

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authView struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

type feedbackView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	VoteCount     int       `json:"vote_count"`
	Votes         string    `json:"votes"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedDate   string    `json:"created_date"`
	CanDelete     bool      `json:"can_delete"`
}

type commentView struct {
	ID          string    `json:"id"`
	FeedbackID  string    `json:"feedback_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedDate string    `json:"created_date"`
}

type voteView struct {
	Action    board.VoteAction `json:"action"`
	VoteCount int              `json:"vote_count"`
	Votes     string           `json:"votes"`
}

func newUserView(id board.Identity) userView {
	return userView{ID: id.UserID, Username: id.Username, Email: id.Email}
}

func newFeedbackView(f *formatter.Formatter, fb board.Feedback, who *board.Identity) feedbackView {
	return feedbackView{
		ID:            fb.ID,
		Title:         fb.Title,
		Description:   fb.Description,
		Category:      string(fb.Category),
		CategoryLabel: fb.Category.Label(),
		Status:        string(fb.Status),
		StatusLabel:   fb.Status.Label(),
		UserID:        fb.UserID,
		Username:      fb.Username,
		VoteCount:     fb.VoteCount,
		Votes:         f.Votes(fb.VoteCount),
		CreatedAt:     fb.CreatedAt,
		CreatedDate:   f.DateOf(fb.CreatedAt),
		CanDelete:     board.CanDelete(who, fb),
	}
}

func newFeedbackViews(f *formatter.Formatter, items []board.Feedback, who *board.Identity) []feedbackView {
	out := make([]feedbackView, 0, len(items))
	for _, fb := range items {
		out = append(out, newFeedbackView(f, fb, who))
	}
	return out
}

func newCommentViews(f *formatter.Formatter, comments []board.Comment) []commentView {
	out := make([]commentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentView{
			ID:          c.ID,
			FeedbackID:  c.FeedbackID,
			UserID:      c.UserID,
			Username:    c.Username,
			Text:        c.Text,
			CreatedAt:   c.CreatedAt,
			CreatedDate: f.DateTimeOf(c.CreatedAt),
		})
	}
	return out
}
