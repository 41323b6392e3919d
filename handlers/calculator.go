package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
	"pricingtool/templates"
)

// HandleCalculator renders the pricing form with its default values.
func HandleCalculator(currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CalculatorData{
			Input:    services.DefaultPricingInput(),
			Currency: currency,
			Errors:   make(map[string]string),
		}
		return renderPage(e, templates.CalculatorPage(data), templates.CalculatorContent(data))
	}
}

// HandleCalculate computes the total for the submitted form and renders the
// breakdown. Nothing is saved; persisting is a separate action on /history.
func HandleCalculate(currency string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		input, errs := services.ParsePricingForm(e.Request.Form, e.Request.Form["additional_options"])
		data := templates.CalculatorData{
			Input:    input,
			Currency: currency,
			Errors:   errs,
		}

		if len(errs) > 0 {
			SetToast(e, ToastWarning, "Please fix the errors below")
			return renderPage(e, templates.CalculatorPage(data), templates.CalculatorContent(data))
		}

		result := services.ComputeTotal(input)
		data.Result = &result

		logging.Debug("calculator: computed total",
			zap.String("market", string(input.Market)),
			zap.String("discount_type", string(input.DiscountType)),
			zap.Float64("subtotal", result.Subtotal),
			zap.Float64("total", result.TotalCost),
		)

		return renderPage(e, templates.CalculatorPage(data), templates.CalculatorContent(data))
	}
}
