package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}

// historyFilename builds the download name for a history export.
func historyFilename(ext string, now time.Time) string {
	return sanitizeFilename(fmt.Sprintf("project_data_%s.%s", now.Format("2006-01-02"), ext))
}

// writeDownload sends body as an attachment.
func writeDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}

// HandleHistoryExportCSV downloads a snapshot of the ledger in its CSV format.
func HandleHistoryExportCSV(ledger *services.Ledger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := ledger.LoadAll()
		if err != nil {
			logging.Error("export_csv: could not load ledger", zap.String("path", ledger.Path()), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Could not read saved projects.")
		}

		data, err := ledger.Serialize(records)
		if err != nil {
			logging.Error("export_csv: failed to serialize", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate CSV file")
		}

		return writeDownload(e, "text/csv; charset=utf-8", historyFilename("csv", time.Now()), data)
	}
}

// HandleHistoryExportExcel downloads the saved projects as an XLSX workbook.
func HandleHistoryExportExcel(ledger *services.Ledger, currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := ledger.LoadAll()
		if err != nil {
			logging.Error("export_excel: could not load ledger", zap.String("path", ledger.Path()), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Could not read saved projects.")
		}

		xlsxBytes, err := services.GenerateHistoryExcel(services.HistoryExport{
			Title:         "Saved Projects",
			GeneratedDate: time.Now().Format("02 Jan 2006"),
			Currency:      currency,
			Records:       records,
		})
		if err != nil {
			logging.Error("export_excel: failed to generate", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		return writeDownload(e,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			historyFilename("xlsx", time.Now()),
			xlsxBytes,
		)
	}
}
