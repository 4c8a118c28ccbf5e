package api

import (
	"net/http"

	"github.com/dmitrymomot/feedbackboard/handler"
	"github.com/dmitrymomot/feedbackboard/internal/board"
)

type commentRequest struct {
	FeedbackID string `path:"id" json:"-"`
	Text       string `json:"text"`
}

func (h *Handler) listComments(ctx handler.Context, req feedbackRequest) handler.Response {
	comments, err := h.svc.ListComments(ctx, req.ID)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(newCommentViews(h.fmt, comments))
}

func (h *Handler) addComment(ctx handler.Context, req commentRequest) handler.Response {
	c, err := h.svc.AddComment(ctx, Identity(ctx), req.FeedbackID, req.Text)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(newCommentViews(h.fmt, []board.Comment{c})[0], handler.WithStatus(http.StatusCreated))
}
