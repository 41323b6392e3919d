package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"pricingtool/services"
)

// CalculatorData feeds the pricing form and, after a submit, the breakdown.
type CalculatorData struct {
	Input    services.PricingInput
	Result   *services.PricingResult
	Currency string
	Errors   map[string]string
}

// CalculatorPage renders the pricing form followed by the breakdown when a
// result is present.
func CalculatorPage(data CalculatorData) templ.Component {
	return Layout("Pricing Tool", "calculator", CalculatorContent(data))
}

// CalculatorContent renders the form and breakdown without the page shell so
// HTMX submits can swap it in place.
func CalculatorContent(data CalculatorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		in := data.Input

		h.raw(`<section id="calculator"><h2>User Interface: Pricing Tool</h2>`)
		h.raw(`<form method="post" action="/calculator" hx-post="/calculator" hx-target="#calculator" hx-swap="outerHTML">`)

		h.raw(`<div class="columns"><div class="column">`)
		h.raw(`<label for="market">Market Selection</label><select id="market" name="market">`)
		for _, m := range services.Markets {
			h.rawf(`<option value="%s"`, m)
			h.raw(selected(m == in.Market))
			h.rawf(`>%s</option>`, m)
		}
		h.raw(`</select>`)
		h.fieldError(data.Errors, "market")

		numberInput(h, data.Errors, "estimated_hours", "Estimated Hours per Task", in.EstimatedHours)
		h.rawf(`<label for="target_audience">Target Audience</label><input id="target_audience" name="target_audience" type="text" value="%s">`, in.TargetAudience)

		h.raw(`</div><div class="column">`)
		h.raw(`<fieldset><legend>Additional Options</legend>`)
		for _, opt := range services.AdditionalOptions {
			h.rawf(`<label><input type="checkbox" name="additional_options" value="%s"`, opt)
			h.raw(checked(containsString(in.AdditionalOptions, opt)))
			h.rawf(`> %s</label>`, opt)
		}
		h.raw(`</fieldset>`)
		numberInput(h, data.Errors, "base_cost", "Base Cost (Fixed Hours)", in.BaseCost)
		numberInput(h, data.Errors, "hourly_rate", "Hourly Rate", in.HourlyRate)
		h.raw(`</div></div>`)

		h.raw(`<h3>Discount Options</h3><fieldset><legend>Discount Type</legend>`)
		for _, dt := range services.DiscountTypes {
			h.rawf(`<label><input type="radio" name="discount_type" value="%s"`, dt)
			h.raw(checked(dt == in.DiscountType))
			h.rawf(`> %s</label>`, dt)
		}
		h.raw(`</fieldset>`)
		h.fieldError(data.Errors, "discount_type")
		numberInput(h, data.Errors, "discount_value", "Discount Value", in.DiscountValue)

		h.raw(`<button type="submit">Calculate Pricing</button></form>`)

		if data.Result != nil {
			h.render(Breakdown(in, *data.Result, data.Currency))
		}
		h.raw(`</section>`)
		return h.err
	})
}

// Breakdown renders the pricing summary for one calculation.
func Breakdown(in services.PricingInput, result services.PricingResult, currency string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div class="breakdown"><h3>Pricing Breakdown</h3><dl>`)
		row := func(label, value string) {
			h.rawf(`<dt>%s</dt><dd>%s</dd>`, label, value)
		}
		row("Market", string(in.Market))
		row("Estimated Hours", formatNumber(in.EstimatedHours))
		row("Target Audience", in.TargetAudience)
		if len(in.AdditionalOptions) > 0 {
			row("Additional Options", strings.Join(in.AdditionalOptions, ", "))
		}
		row("Base Cost", formatNumber(in.BaseCost)+" hours")
		row("Hourly Rate", formatNumber(in.HourlyRate)+" "+currencyOrDefault(currency)+"/hour")
		row("Subtotal", services.FormatMoney(result.Subtotal, currency))
		row("Discount Applied", formatNumber(in.DiscountValue)+" ("+string(in.DiscountType)+")")
		h.raw(`</dl>`)
		h.rawf(`<p class="total"><strong>Total Cost: %s</strong></p>`, services.FormatMoney(result.TotalCost, currency))

		// Saving is a separate, explicit action on the history page.
		h.raw(`<form method="get" action="/history">`)
		h.rawf(`<input type="hidden" name="total_cost" value="%s">`, formatNumber(result.TotalCost))
		h.raw(`<button type="submit">Save as project…</button></form>`)
		h.raw(`</div>`)
		return h.err
	})
}

func numberInput(h *htmlWriter, errors map[string]string, name, label string, value float64) {
	h.rawf(`<label for="%s">%s</label>`, name, label)
	h.rawf(`<input id="%s" name="%s" type="number" min="0" step="any" value="%s">`, name, name, formatNumber(value))
	h.fieldError(errors, name)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return services.DefaultCurrency
	}
	return currency
}
