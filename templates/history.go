package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"pricingtool/services"
)

// ProjectForm holds the raw values of the "Add New Project" form.
type ProjectForm struct {
	ProjectName string
	ClientName  string
	TotalCost   string
}

// HistoryData feeds the historical data page.
type HistoryData struct {
	Records  []services.ProjectRecord
	Currency string
	Form     ProjectForm
	Errors   map[string]string
}

// HistoryPage renders the saved projects and the form to add one.
func HistoryPage(data HistoryData) templ.Component {
	return Layout("Historical Data", "history", HistoryContent(data))
}

// HistoryContent renders the history section without the page shell.
func HistoryContent(data HistoryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<section id="history"><h2>Historical Data</h2>`)
		h.render(ProjectList(data.Records, data.Currency))
		h.render(ProjectFormSection(data.Form, data.Errors, data.Currency))
		h.raw(`</section>`)
		return h.err
	})
}

// ProjectList renders saved records in ledger order.
func ProjectList(records []services.ProjectRecord, currency string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h3>Saved Projects</h3>`)
		if len(records) == 0 {
			h.raw(`<p class="info">No historical data found.</p>`)
			return h.err
		}

		h.raw(`<div class="exports">`)
		h.raw(`<a href="/history/export.csv" hx-boost="false">Download CSV</a> `)
		h.raw(`<a href="/history/export.xlsx" hx-boost="false">Download Excel</a>`)
		h.raw(`</div>`)

		h.raw(`<table class="projects"><thead><tr><th>Project Name</th><th>Client Name</th><th>Total Cost</th></tr></thead><tbody>`)
		for _, r := range records {
			h.rawf(`<tr><td>%s</td><td>%s</td><td class="amount">%s</td></tr>`,
				r.ProjectName, r.ClientName, services.FormatMoney(r.TotalCost, currency))
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

// ProjectFormSection renders the "Add New Project" form with inline errors.
func ProjectFormSection(form ProjectForm, errors map[string]string, currency string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h3>Add New Project</h3>`)
		h.raw(`<form method="post" action="/history">`)
		h.rawf(`<label for="project_name">Project Name</label><input id="project_name" name="project_name" type="text" value="%s">`, form.ProjectName)
		h.fieldError(errors, "project_name")
		h.rawf(`<label for="client_name">Client Name</label><input id="client_name" name="client_name" type="text" value="%s">`, form.ClientName)
		h.fieldError(errors, "client_name")
		h.rawf(`<label for="total_cost">Total Cost (%s)</label>`, currencyOrDefault(currency))
		h.rawf(`<input id="total_cost" name="total_cost" type="number" min="0" step="any" value="%s">`, form.TotalCost)
		h.fieldError(errors, "total_cost")
		h.raw(`<button type="submit">Save Project</button></form>`)
		return h.err
	})
}
