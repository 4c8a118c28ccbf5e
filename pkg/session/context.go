package session

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/feedbackboard/pkg/logger"
)

type contextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// LoggerExtractor adds user_id to log records emitted with a request context
// that carries a session.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if s, ok := FromContext(ctx); ok {
			return logger.UserID(s.UserID), true
		}
		return slog.Attr{}, false
	}
}
