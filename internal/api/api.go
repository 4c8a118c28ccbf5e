package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/feedbackboard/handler"
	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/binder"
	"github.com/dmitrymomot/feedbackboard/pkg/clientip"
	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/ratelimiter"
	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

// ErrTooManyAttempts is returned when a client exceeds the sign-in rate limit.
var ErrTooManyAttempts = errors.New("Too many attempts. Please try again later")

// ErrorMappings translates board errors into HTTP statuses. The board
// error's message is sent to the client as is.
var ErrorMappings = []handler.Mapping{
	handler.MapError(board.ErrUnauthenticated, handler.ErrUnauthorized),
	handler.MapError(board.ErrInvalidCredentials, handler.ErrUnauthorized),
	handler.MapError(board.ErrEmailTaken, handler.ErrConflict),
	handler.MapError(board.ErrUsernameTaken, handler.ErrConflict),
	handler.MapError(board.ErrFeedbackNotFound, handler.ErrNotFound),
	handler.MapError(board.ErrForbidden, handler.ErrForbidden),
	handler.MapError(ErrTooManyAttempts, handler.ErrTooManyRequests),
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithFormatter sets how dates and vote counts are rendered in responses.
func WithFormatter(f *formatter.Formatter) Option {
	return func(h *Handler) {
		if f != nil {
			h.fmt = f
		}
	}
}

// WithAuthLimiter throttles register and login per client address.
func WithAuthLimiter(l ratelimiter.Limiter) Option {
	return func(h *Handler) {
		h.authLimiter = l
	}
}

// Handler exposes board.Service over HTTP.
type Handler struct {
	svc          *board.Service
	sessions     *session.Manager
	fmt          *formatter.Formatter
	log          *slog.Logger
	authLimiter  ratelimiter.Limiter
	errorHandler handler.ErrorHandler[handler.Context]
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
	h.errorHandler = handler.NewErrorHandler(h.log.With(logger.Component("api")), ErrorMappings...)
	return h
}

// Routes returns the API router. Paths are relative to the mount point.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.sessions.Middleware)

	r.Group(func(r chi.Router) {
		if h.authLimiter != nil {
			r.Use(ratelimiter.Middleware(h.authLimiter, clientKey,
				ratelimiter.WithDeniedHandler(http.HandlerFunc(h.tooManyAttempts)),
			))
		}
		r.Post("/register", wrap(h, h.register, binder.JSON()))
		r.Post("/login", wrap(h, h.login, binder.JSON()))
	})
	r.Post("/logout", wrap(h, h.logout))

	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", wrap(h, h.listFeedback, binder.Query()))
		r.Post("/", wrap(h, h.submitFeedback, binder.JSON()))

		r.Route("/{id}", func(r chi.Router) {
			pathID := binder.Path(chi.URLParam)
			r.Get("/", wrap(h, h.getFeedback, pathID))
			r.Delete("/", wrap(h, h.deleteFeedback, pathID))
			r.Post("/vote", wrap(h, h.vote, pathID))
			r.Get("/comments", wrap(h, h.listComments, pathID))
			r.Post("/comments", wrap(h, h.addComment, pathID, binder.JSON()))
		})
	})

	return r
}

func wrap[R any](h *Handler, fn handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](h.errorHandler),
	)
}

// fail renders err as a JSON error. Unmapped errors are logged since the
// client only sees a generic message for them.
func (h *Handler) fail(ctx handler.Context, err error) handler.Response {
	info := handler.Classify(err, ErrorMappings...)
	if info.Status >= http.StatusInternalServerError {
		h.log.ErrorContext(ctx, "request failed",
			logger.Error(err),
			slog.String("path", ctx.Request().URL.Path),
			logger.Component("api"),
		)
	}
	return handler.JSONError(err, ErrorMappings...)
}

func (h *Handler) tooManyAttempts(w http.ResponseWriter, r *http.Request) {
	h.log.WarnContext(r.Context(), "auth rate limit exceeded",
		slog.String("path", r.URL.Path),
		logger.Component("api"),
	)
	if err := handler.JSONError(ErrTooManyAttempts, ErrorMappings...).Render(w, r); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render rate limit response", logger.Error(err))
	}
}

// clientKey prefers the address resolved by clientip.Middleware.
func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// Identity returns the signed-in user carried by ctx, or nil.
func Identity(ctx context.Context) *board.Identity {
	s, ok := session.FromContext(ctx)
	if !ok {
		return nil
	}
	return &board.Identity{UserID: s.UserID, Username: s.Username, Email: s.Email}
}
