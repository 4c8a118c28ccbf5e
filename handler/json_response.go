package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body shape for every API response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON wraps v in {"data": v}.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": {...}} using Classify with mappings.
func JSONError(err error, mappings ...Mapping) Response {
	info := Classify(err, mappings...)
	return &jsonResponse{
		status: info.Status,
		body: Envelope{Error: &ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}},
	}
}
