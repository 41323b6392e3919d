package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"pricingtool/templates"
)

// HandleHome renders the welcome page.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		page := templates.HomePage()
		return renderPage(e, page, page)
	}
}
