// Package logger builds the service's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout) and wraps the handler with a decorator that copies
// request-scoped values such as the request ID or the signed-in user's ID
// from the context into every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "feedbackboard"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "feedback submitted", logger.FeedbackID(fb.ID))
//
// Attribute helpers (Error, UserID, FeedbackID, Component, …) keep key
// names consistent across packages and return an empty slog.Attr for nil
// values so they can be passed unconditionally.
package logger
