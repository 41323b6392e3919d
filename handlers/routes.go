package handlers

import (
	"os"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"pricingtool/services"
)

// RegisterRoutes mounts every page and action on the serve router.
// staticDir is served under /static.
func RegisterRoutes(se *core.ServeEvent, ledger *services.Ledger, currency, staticDir string) {
	se.Router.BindFunc(RequestLogMiddleware())

	se.Router.GET("/static/{path...}", apis.Static(os.DirFS(staticDir), false))

	se.Router.GET("/", HandleHome())

	// ── Calculator ───────────────────────────────────────────
	se.Router.GET("/calculator", HandleCalculator(currency))
	se.Router.POST("/calculator", HandleCalculate(currency))

	// ── History (export routes before the bare path) ─────────
	se.Router.GET("/history/export.csv", HandleHistoryExportCSV(ledger))
	se.Router.GET("/history/export.xlsx", HandleHistoryExportExcel(ledger, currency))
	se.Router.GET("/history", HandleHistoryList(ledger, currency))
	se.Router.POST("/history", HandleHistorySave(ledger, currency))

	// ── Admin ────────────────────────────────────────────────
	se.Router.GET("/admin", HandleAdmin(currency))
	se.Router.POST("/admin/rate", HandleAdminRate(currency))
	se.Router.POST("/admin/addons", HandleAdminAddon(currency))

	// ── PDF report ───────────────────────────────────────────
	se.Router.GET("/report", HandleReportForm())
	se.Router.POST("/report", HandleReportPDF())
}
