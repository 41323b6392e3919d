// Package templates holds the templ components that render the pricing tool pages.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup to w and remembers the first error so components
// can be written as straight-line code.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// rawf writes trusted markup built from format; every argument is escaped.
func (h *htmlWriter) rawf(format string, args ...any) {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(fmt.Sprint(a))
	}
	h.raw(fmt.Sprintf(format, escaped...))
}

// text writes escaped text content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// render writes a child component.
func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// fieldError writes the inline error for field, if any.
func (h *htmlWriter) fieldError(errors map[string]string, field string) {
	if msg, ok := errors[field]; ok {
		h.rawf(`<p class="field-error" data-field="%s">%s</p>`, field, msg)
	}
}

// checked returns the checked attribute when on is true.
func checked(on bool) string {
	if on {
		return " checked"
	}
	return ""
}

// selected returns the selected attribute when on is true.
func selected(on bool) string {
	if on {
		return " selected"
	}
	return ""
}

// formatNumber renders a form value without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
