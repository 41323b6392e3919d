package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ReportFormData holds the values of the PDF report form.
type ReportFormData struct {
	Notes         string
	IncludeTerms  bool
	IncludePolicy bool
}

// ReportPage renders the PDF export form. The form posts without HTMX so the
// browser handles the download.
func ReportPage(data ReportFormData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<section id="report"><h2>Export PDF</h2>`)
		h.raw(`<form method="post" action="/report" hx-boost="false">`)
		h.raw(`<label for="notes">Additional Notes</label>`)
		h.rawf(`<textarea id="notes" name="notes" rows="8">%s</textarea>`, data.Notes)
		h.raw(`<label><input type="checkbox" name="include_terms" value="on"`)
		h.raw(checked(data.IncludeTerms))
		h.raw(`> Include Terms</label>`)
		h.raw(`<label><input type="checkbox" name="include_policy" value="on"`)
		h.raw(checked(data.IncludePolicy))
		h.raw(`> Include Privacy Policy</label>`)
		h.raw(`<button type="submit">Generate PDF</button></form></section>`)
		return h.err
	})
	return Layout("Export PDF", "report", body)
}
