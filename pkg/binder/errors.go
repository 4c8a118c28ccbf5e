package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrRequestTooLarge      = errors.New("request body too large")
	ErrInvalidQuery         = errors.New("invalid query parameters")
	ErrInvalidPath          = errors.New("invalid path parameters")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
