package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
	"pricingtool/templates"
)

// HandleReportForm renders the PDF report form.
func HandleReportForm() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.ReportPage(templates.ReportFormData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleReportPDF builds the report from the submitted notes and sections
// and sends it as a download.
func HandleReportPDF() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := services.ReportData{
			Title:         services.ReportTitle,
			Notes:         e.Request.FormValue("notes"),
			IncludeTerms:  e.Request.FormValue("include_terms") != "",
			IncludePolicy: e.Request.FormValue("include_policy") != "",
			GeneratedDate: time.Now().Format("02 Jan 2006"),
		}

		pdfBytes, err := services.GenerateReportPDF(data)
		if err != nil {
			logging.Error("report_pdf: failed to generate", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		logging.Info("report_pdf: generated",
			zap.Bool("terms", data.IncludeTerms),
			zap.Bool("policy", data.IncludePolicy),
			zap.Int("bytes", len(pdfBytes)),
		)
		SetToast(e, ToastSuccess, "PDF generated!")
		return writeDownload(e, "application/pdf", services.ReportFilename, pdfBytes)
	}
}
