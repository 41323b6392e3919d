package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AdminData feeds the admin panel forms.
type AdminData struct {
	DefaultHourlyRate float64
	AddonName         string
	AddonHours        float64
	AddonCost         float64
	Currency          string
	Message           string
}

// AdminPage renders the hourly rate and add-on forms.
func AdminPage(data AdminData) templ.Component {
	return Layout("Admin Panel", "admin", AdminContent(data))
}

// AdminContent renders the admin section without the page shell.
func AdminContent(data AdminData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		currency := currencyOrDefault(data.Currency)

		h.raw(`<section id="admin"><h2>Admin Panel</h2>`)
		if data.Message != "" {
			h.rawf(`<p class="success">%s</p>`, data.Message)
		}

		h.raw(`<h3>Configure Hourly Rates</h3>`)
		h.raw(`<form method="post" action="/admin/rate" hx-post="/admin/rate" hx-target="#admin" hx-swap="outerHTML">`)
		h.rawf(`<label for="default_hourly_rate">Default Hourly Rate (%s)</label>`, currency)
		h.rawf(`<input id="default_hourly_rate" name="default_hourly_rate" type="number" min="0" step="any" value="%s">`, formatNumber(data.DefaultHourlyRate))
		h.raw(`<button type="submit">Save Hourly Rate</button></form>`)

		h.raw(`<h3>Manage Addons</h3>`)
		h.raw(`<form method="post" action="/admin/addons" hx-post="/admin/addons" hx-target="#admin" hx-swap="outerHTML">`)
		h.rawf(`<label for="addon_name">Addon Name</label><input id="addon_name" name="addon_name" type="text" value="%s">`, data.AddonName)
		h.rawf(`<label for="addon_hours">Hours for Addon</label><input id="addon_hours" name="addon_hours" type="number" min="0" step="any" value="%s">`, formatNumber(data.AddonHours))
		h.rawf(`<label for="addon_cost">Cost for Addon (%s)</label>`, currency)
		h.rawf(`<input id="addon_cost" name="addon_cost" type="number" min="0" step="any" value="%s">`, formatNumber(data.AddonCost))
		h.raw(`<button type="submit">Save Addon</button></form>`)

		h.raw(`</section>`)
		return h.err
	})
}
