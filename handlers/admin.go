package handlers

import (
	"fmt"
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

// Defaults shown in the admin forms.
const (
	defaultAddonHours = 1
	defaultAddonCost  = 10
)

func defaultAdminData(currency string) templates.AdminData {
	return templates.AdminData{
		DefaultHourlyRate: services.DefaultHourlyRate,
		AddonHours:        defaultAddonHours,
		AddonCost:         defaultAddonCost,
		Currency:          currency,
	}
}

// HandleAdmin renders the admin panel.
func HandleAdmin(currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := defaultAdminData(currency)
		return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
	}
}

// HandleAdminRate acknowledges a new default hourly rate. The value is not
// stored; the calculator keeps its built-in default.
func HandleAdminRate(currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := defaultAdminData(currency)
		rate, err := parseAdminNumber(e.Request.FormValue("default_hourly_rate"), services.DefaultHourlyRate)
		if err != nil {
			SetToast(e, ToastWarning, "Hourly rate must be a number")
			return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
		}
		data.DefaultHourlyRate = rate

		msg := fmt.Sprintf("Default hourly rate set to %s %s/hour.", services.FormatAmount(rate), currency)
		data.Message = msg
		logging.Info("admin: default hourly rate submitted", zap.Float64("rate", rate))
		SetToast(e, ToastSuccess, msg)
		return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
	}
}

// HandleAdminAddon acknowledges an add-on definition. Add-ons are not stored.
func HandleAdminAddon(currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := defaultAdminData(currency)
		data.AddonName = strings.TrimSpace(e.Request.FormValue("addon_name"))

		hours, hoursErr := parseAdminNumber(e.Request.FormValue("addon_hours"), defaultAddonHours)
		cost, costErr := parseAdminNumber(e.Request.FormValue("addon_cost"), defaultAddonCost)
		if hoursErr != nil || costErr != nil {
			SetToast(e, ToastWarning, "Addon hours and cost must be numbers")
			return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
		}
		if data.AddonName == "" {
			SetToast(e, ToastWarning, "Addon name is required")
			return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
		}
		data.AddonHours = hours
		data.AddonCost = cost

		msg := fmt.Sprintf("Addon '%s' saved with %s hours and %s %s.",
			data.AddonName, services.FormatAmount(hours), services.FormatAmount(cost), currency)
		data.Message = msg
		logging.Info("admin: addon submitted",
			zap.String("name", data.AddonName),
			zap.Float64("hours", hours),
			zap.Float64("cost", cost),
		)
		SetToast(e, ToastSuccess, msg)
		return renderPage(e, templates.AdminPage(data), templates.AdminContent(data))
	}
}

// parseAdminNumber parses a non-negative number. Blank input yields def and
// negative input is clamped to zero.
func parseAdminNumber(raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return math.Max(v, 0), nil
}
