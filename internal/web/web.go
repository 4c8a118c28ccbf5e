package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/feedbackboard/handler"
	"github.com/dmitrymomot/feedbackboard/internal/api"
	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/binder"
	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

func WithFormatter(f *formatter.Formatter) Option {
	return func(h *Handler) {
		if f != nil {
			h.fmt = f
		}
	}
}

// Handler serves the HTML pages.
type Handler struct {
	svc      *board.Service
	sessions *session.Manager
	fmt      *formatter.Formatter
	log      *slog.Logger
}

func New(svc *board.Service, sessions *session.Manager, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		sessions: sessions,
		fmt:      formatter.New(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type feedRequest struct {
	Filter string `query:"filter"`
}

type detailRequest struct {
	ID string `path:"id"`
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.sessions.Middleware)

	r.Get("/", handler.Wrap(h.feed,
		handler.WithBinders[handler.Context, feedRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, feedRequest](h.renderError),
	))
	r.Get("/feedback/{id}", handler.Wrap(h.detail,
		handler.WithBinders[handler.Context, detailRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, detailRequest](h.renderError),
	))
	return r
}

func (h *Handler) feed(ctx handler.Context, req feedRequest) handler.Response {
	who := api.Identity(ctx)
	items, err := h.svc.ListFeedback(ctx, req.Filter, who)
	if err != nil {
		return h.errorResponse(ctx, err)
	}
	return handler.Templ(FeedPage(FeedPageParams{
		Items:    items,
		Filter:   req.Filter,
		SignedIn: who,
		Format:   h.fmt,
	}))
}

func (h *Handler) detail(ctx handler.Context, req detailRequest) handler.Response {
	fb, err := h.svc.GetFeedback(ctx, req.ID)
	if err != nil {
		return h.errorResponse(ctx, err)
	}
	comments, err := h.svc.ListComments(ctx, fb.ID)
	if err != nil {
		return h.errorResponse(ctx, err)
	}
	return handler.Templ(DetailPage(DetailPageParams{
		Feedback: fb,
		Comments: comments,
		SignedIn: api.Identity(ctx),
		Format:   h.fmt,
	}))
}

func (h *Handler) errorResponse(ctx handler.Context, err error) handler.Response {
	info := handler.Classify(err, api.ErrorMappings...)
	if !errors.Is(err, board.ErrFeedbackNotFound) {
		h.log.ErrorContext(ctx, "page render failed",
			logger.Error(err),
			slog.String("path", ctx.Request().URL.Path),
			logger.Component("web"),
		)
	}
	return handler.TemplWithStatus(ErrorPage(ErrorPageParams{Status: info.Status, Message: info.Message}), info.Status)
}

func (h *Handler) renderError(ctx handler.Context, err error) {
	resp := h.errorResponse(ctx, err)
	if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
