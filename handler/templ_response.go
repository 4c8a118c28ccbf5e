package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

// Render buffers the component so a render failure can still become an
// error response.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if t.component == nil {
		return ErrNilResponse
	}
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders an HTML component with status 200.
func Templ(c templ.Component) Response {
	return templResponse{component: c, status: http.StatusOK}
}

func TemplWithStatus(c templ.Component, status int) Response {
	return templResponse{component: c, status: status}
}
