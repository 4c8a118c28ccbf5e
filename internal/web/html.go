package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
)

// htmlWriter keeps the first write error so components can write a page
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes s escaped.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// stored writes text that was escaped before it was stored.
func (hw *htmlWriter) stored(s string) {
	hw.raw(templ.EscapeString(sanitizer.UnescapeHTML(s)))
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}
