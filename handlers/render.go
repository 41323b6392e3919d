package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"
)

// isPartialRequest reports whether the request came from an hx-post/hx-get
// that swaps a fragment, as opposed to a boosted full-page navigation.
func isPartialRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// renderPage renders the fragment for partial HTMX requests and the full page
// otherwise.
func renderPage(e *core.RequestEvent, page, fragment templ.Component) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isPartialRequest(e.Request) {
		return fragment.Render(e.Request.Context(), e.Response)
	}
	return page.Render(e.Request.Context(), e.Response)
}

// redirectAfterPost answers a successful form post with HX-Redirect for HTMX
// requests and a 302 otherwise.
func redirectAfterPost(e *core.RequestEvent, target string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", target)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, target)
}
