package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Label string
	Href  string
	Key   string
}

// NavItems lists the sidebar entries in display order.
var NavItems = []NavItem{
	{Label: "Home", Href: "/", Key: "home"},
	{Label: "Historical Data", Href: "/history", Key: "history"},
	{Label: "Admin Panel", Href: "/admin", Key: "admin"},
	{Label: "Pricing Tool", Href: "/calculator", Key: "calculator"},
	{Label: "Export PDF", Href: "/report", Key: "report"},
}

// Layout wraps body in the page shell with the navigation sidebar. active is
// the NavItem key to highlight.
func Layout(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s · Pricing Tool</title>`, title)
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`<script src="/static/toast.js" defer></script>`)
		h.raw(`</head><body hx-boost="true">`)

		h.raw(`<aside class="sidebar"><h2>Navigation</h2><ul>`)
		for _, item := range NavItems {
			class := ""
			if item.Key == active {
				class = ` class="active"`
			}
			h.raw(`<li` + class + `>`)
			h.rawf(`<a href="%s">%s</a>`, item.Href, item.Label)
			h.raw(`</li>`)
		}
		h.raw(`</ul></aside>`)

		h.raw(`<main><h1>Pricing Tool</h1>`)
		h.render(body)
		h.raw(`</main><div id="toast-container"></div></body></html>`)
		return h.err
	})
}

// HomePage renders the welcome screen.
func HomePage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<p>Welcome to the Pricing Tool!</p>`)
		h.raw(`<p>Use the navigation to calculate a quote, review saved projects or export a report.</p>`)
		return h.err
	})
	return Layout("Home", "home", body)
}
