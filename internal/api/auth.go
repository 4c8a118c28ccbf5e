package api

import (
	"net/http"

	"github.com/dmitrymomot/feedbackboard/handler"
	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

func (h *Handler) register(ctx handler.Context, req board.RegisterInput) handler.Response {
	id, err := h.svc.Register(ctx, req)
	if err != nil {
		return h.fail(ctx, err)
	}
	return h.startSession(ctx, id, http.StatusCreated)
}

func (h *Handler) login(ctx handler.Context, req board.LoginInput) handler.Response {
	id, err := h.svc.Login(ctx, req)
	if err != nil {
		return h.fail(ctx, err)
	}
	return h.startSession(ctx, id, http.StatusOK)
}

type logoutRequest struct{}

func (h *Handler) logout(ctx handler.Context, _ logoutRequest) handler.Response {
	if err := h.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		return h.fail(ctx, err)
	}
	return handler.Empty()
}

func (h *Handler) startSession(ctx handler.Context, id board.Identity, status int) handler.Response {
	s, err := h.sessions.Create(ctx, ctx.ResponseWriter(), session.Subject{
		UserID:   id.UserID,
		Username: id.Username,
		Email:    id.Email,
	})
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(authView{User: newUserView(id), Token: s.Token}, handler.WithStatus(status))
}
