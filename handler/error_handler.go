package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/feedbackboard/pkg/binder"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/validator"
)

const internalErrorMessage = "An error occurred processing your request"

// ErrorInfo is the client-facing classification of an error.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
	Details map[string][]string
}

// Mapping turns a domain error into an HTTPError. The domain error's own
// text becomes the client message.
type Mapping struct {
	Target error
	As     HTTPError
}

// MapError is shorthand for building a Mapping.
func MapError(target error, as HTTPError) Mapping {
	return Mapping{Target: target, As: as}
}

var binderErrors = []Mapping{
	{Target: binder.ErrRequestTooLarge, As: ErrRequestTooLarge},
	{Target: binder.ErrUnsupportedMediaType, As: ErrUnsupportedMediaType},
	{Target: binder.ErrMissingContentType, As: ErrUnsupportedMediaType},
	{Target: binder.ErrFailedToParseJSON, As: ErrBadRequest},
	{Target: binder.ErrInvalidQuery, As: ErrBadRequest},
	{Target: binder.ErrInvalidPath, As: ErrBadRequest},
}

// Classify maps err to a status, code and message. Validation errors win,
// then the given mappings in order, then binder failures, then HTTPError.
// Anything else is a 500 with a generic message.
func Classify(err error, mappings ...Mapping) ErrorInfo {
	if validator.IsValidationError(err) {
		ve := validator.ExtractValidationErrors(err)
		return ErrorInfo{
			Status:  http.StatusUnprocessableEntity,
			Code:    ErrUnprocessableEntity.Key,
			Message: ve.First(),
			Details: ve.Map(),
		}
	}

	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return ErrorInfo{Status: m.As.Code, Code: m.As.Key, Message: m.Target.Error()}
		}
	}

	for _, m := range binderErrors {
		if errors.Is(err, m.Target) {
			return ErrorInfo{Status: m.As.Code, Code: m.As.Key, Message: err.Error()}
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return ErrorInfo{Status: httpErr.Code, Code: httpErr.Key, Message: httpErr.Key}
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    ErrInternalServerError.Key,
		Message: internalErrorMessage,
	}
}

// NewErrorHandler returns an ErrorHandler that logs the failure and writes
// a JSON error envelope. 4xx are logged at WARN and 5xx at ERROR.
func NewErrorHandler(log *slog.Logger, mappings ...Mapping) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		info := Classify(err, mappings...)

		level := slog.LevelWarn
		if info.Status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", info.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		resp := jsonResponse{
			status: info.Status,
			body: Envelope{Error: &ErrorDetail{
				Code:    info.Code,
				Message: info.Message,
				Details: info.Details,
			}},
		}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
