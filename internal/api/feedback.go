package api

import (
	"net/http"

	"github.com/dmitrymomot/feedbackboard/handler"
	"github.com/dmitrymomot/feedbackboard/internal/board"
)

type listRequest struct {
	Filter string `query:"filter"`
}

type feedbackRequest struct {
	ID string `path:"id"`
}

func (h *Handler) listFeedback(ctx handler.Context, req listRequest) handler.Response {
	who := Identity(ctx)
	items, err := h.svc.ListFeedback(ctx, req.Filter, who)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(newFeedbackViews(h.fmt, items, who))
}

func (h *Handler) getFeedback(ctx handler.Context, req feedbackRequest) handler.Response {
	fb, err := h.svc.GetFeedback(ctx, req.ID)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(newFeedbackView(h.fmt, fb, Identity(ctx)))
}

func (h *Handler) submitFeedback(ctx handler.Context, req board.SubmitInput) handler.Response {
	who := Identity(ctx)
	fb, err := h.svc.SubmitFeedback(ctx, who, req)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(newFeedbackView(h.fmt, fb, who), handler.WithStatus(http.StatusCreated))
}

func (h *Handler) deleteFeedback(ctx handler.Context, req feedbackRequest) handler.Response {
	if err := h.svc.DeleteFeedback(ctx, Identity(ctx), req.ID); err != nil {
		return h.fail(ctx, err)
	}
	return handler.Empty()
}

func (h *Handler) vote(ctx handler.Context, req feedbackRequest) handler.Response {
	res, err := h.svc.ToggleVote(ctx, Identity(ctx), req.ID)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(voteView{
		Action:    res.Action,
		VoteCount: res.VoteCount,
		Votes:     h.fmt.Votes(res.VoteCount),
	})
}
