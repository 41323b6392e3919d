package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
	"pricingtool/templates"
)

// HandleHistoryList renders the saved projects and the add form. A
// total_cost query parameter pre-fills the form, which is how the calculator
// hands a result over for saving.
func HandleHistoryList(ledger *services.Ledger, currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := ledger.LoadAll()
		if err != nil {
			logging.Error("history_list: could not load ledger", zap.String("path", ledger.Path()), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Could not read saved projects.")
		}

		data := templates.HistoryData{
			Records:  records,
			Currency: currency,
			Form: templates.ProjectForm{
				TotalCost: strings.TrimSpace(e.Request.URL.Query().Get("total_cost")),
			},
			Errors: make(map[string]string),
		}
		return renderPage(e, templates.HistoryPage(data), templates.HistoryContent(data))
	}
}

// HandleHistorySave appends the submitted project to the ledger. Both names
// are required; a rejected submit re-renders the form and writes nothing.
func HandleHistorySave(ledger *services.Ledger, currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := templates.ProjectForm{
			ProjectName: strings.TrimSpace(e.Request.FormValue("project_name")),
			ClientName:  strings.TrimSpace(e.Request.FormValue("client_name")),
			TotalCost:   strings.TrimSpace(e.Request.FormValue("total_cost")),
		}

		errs := make(map[string]string)
		if form.ProjectName == "" {
			errs["project_name"] = "Project name is required"
		}
		if form.ClientName == "" {
			errs["client_name"] = "Client name is required"
		}
		total, err := parseTotalCost(form.TotalCost)
		if err != nil {
			errs["total_cost"] = "Total cost must be a number"
		}

		record := services.ProjectRecord{
			ProjectName: form.ProjectName,
			ClientName:  form.ClientName,
			TotalCost:   total,
		}

		if len(errs) == 0 {
			err = ledger.Append(record)
			var verr *services.ValidationError
			switch {
			case err == nil:
				logging.Info("history_save: project saved",
					zap.String("project", record.ProjectName),
					zap.String("client", record.ClientName),
					zap.Float64("total", record.TotalCost),
				)
				SetToast(e, ToastSuccess, "Project saved successfully!")
				return redirectAfterPost(e, "/history")
			case errors.As(err, &verr):
				errs[verr.Field] = verr.Message
			default:
				logging.Error("history_save: could not append record", zap.String("path", ledger.Path()), zap.Error(err))
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		SetToast(e, ToastWarning, saveWarning(form, errs))

		records, err := ledger.LoadAll()
		if err != nil {
			logging.Error("history_save: could not load ledger", zap.String("path", ledger.Path()), zap.Error(err))
			records = nil
		}
		data := templates.HistoryData{
			Records:  records,
			Currency: currency,
			Form:     form,
			Errors:   errs,
		}
		return renderPage(e, templates.HistoryPage(data), templates.HistoryContent(data))
	}
}

// saveWarning picks the toast text for a rejected save.
func saveWarning(form templates.ProjectForm, errs map[string]string) string {
	_, badTotal := errs["total_cost"]
	switch {
	case form.ProjectName == "" || form.ClientName == "":
		return "Please fill out all fields before saving."
	case badTotal:
		return "Total cost must be a number."
	default:
		return "Please fix the errors below."
	}
}

// parseTotalCost reads the total cost field. Blank means zero and negative
// input is clamped to zero, matching the number input's min of 0.
func parseTotalCost(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}
