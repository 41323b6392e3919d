// Package services provides pricing calculation, ledger storage and export
// functions for the pricing tool.
package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Market identifies the market a quote is prepared for.
type Market string

const (
	Market1 Market = "Market 1"
	Market2 Market = "Market 2"
	Market3 Market = "Market 3"
)

// Markets lists the selectable markets in display order.
var Markets = []Market{Market1, Market2, Market3}

// DiscountType selects how DiscountValue is applied to the subtotal.
type DiscountType string

const (
	DiscountFlat       DiscountType = "Flat Rate"
	DiscountPercentage DiscountType = "Percentage"
)

// DiscountTypes lists the discount options in display order.
var DiscountTypes = []DiscountType{DiscountFlat, DiscountPercentage}

// AdditionalOptions lists the add-on choices offered on the calculator form.
// They are echoed in the breakdown and never change the total.
var AdditionalOptions = []string{"Option A", "Option B", "Option C"}

// Form defaults.
const (
	DefaultEstimatedHours = 1.0
	DefaultBaseCost       = 10.0
	DefaultHourlyRate     = 50.0
	DefaultTargetAudience = "Default Audience"
)

// PricingInput holds the calculator fields. Numeric fields are expected to be
// non-negative; ParsePricingForm guarantees that for form input.
type PricingInput struct {
	Market            Market
	EstimatedHours    float64
	HourlyRate        float64
	BaseCost          float64
	DiscountType      DiscountType
	DiscountValue     float64
	TargetAudience    string
	AdditionalOptions []string
}

// PricingResult is the outcome of ComputeTotal.
type PricingResult struct {
	Subtotal       float64
	DiscountAmount float64
	TotalCost      float64
}

// DefaultPricingInput returns the values the calculator form starts with.
func DefaultPricingInput() PricingInput {
	return PricingInput{
		Market:         Market1,
		EstimatedHours: DefaultEstimatedHours,
		HourlyRate:     DefaultHourlyRate,
		BaseCost:       DefaultBaseCost,
		DiscountType:   DiscountFlat,
		TargetAudience: DefaultTargetAudience,
	}
}

// ComputeTotal returns base cost plus hourly rate times hours, less the
// discount. The total is not clamped: a flat discount larger than the
// subtotal yields a negative total.
func ComputeTotal(in PricingInput) PricingResult {
	total := in.BaseCost + in.HourlyRate*in.EstimatedHours
	subtotal := total

	switch in.DiscountType {
	case DiscountFlat:
		total -= in.DiscountValue
	case DiscountPercentage:
		total -= total * (in.DiscountValue / 100)
	}

	return PricingResult{
		Subtotal:       subtotal,
		DiscountAmount: subtotal - total,
		TotalCost:      total,
	}
}

// ParseMarket accepts the display label ("Market 2") or the compact form
// ("market2", "2").
func ParseMarket(s string) (Market, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch key {
	case "market1", "1":
		return Market1, nil
	case "market2", "2":
		return Market2, nil
	case "market3", "3":
		return Market3, nil
	}
	return "", fmt.Errorf("unknown market %q", s)
}

// ParseDiscountType accepts "Flat Rate"/"flat" and "Percentage"/"percent".
func ParseDiscountType(s string) (DiscountType, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch key {
	case "flatrate", "flat":
		return DiscountFlat, nil
	case "percentage", "percent", "pct":
		return DiscountPercentage, nil
	}
	return "", fmt.Errorf("unknown discount type %q", s)
}

// FormValues is the accessor ParsePricingForm reads from; url.Values
// satisfies it.
type FormValues interface {
	Get(key string) string
}

// ParsePricingForm builds a PricingInput from submitted form values. Blank
// numeric fields fall back to the form defaults and negative values are
// clamped to zero. Unparsable values are reported in the returned map, keyed
// by form field.
func ParsePricingForm(form FormValues, options []string) (PricingInput, map[string]string) {
	in := DefaultPricingInput()
	errs := make(map[string]string)

	if v := form.Get("market"); v != "" {
		m, err := ParseMarket(v)
		if err != nil {
			errs["market"] = "Select a valid market"
		} else {
			in.Market = m
		}
	}
	if v := form.Get("discount_type"); v != "" {
		dt, err := ParseDiscountType(v)
		if err != nil {
			errs["discount_type"] = "Select a valid discount type"
		} else {
			in.DiscountType = dt
		}
	}

	in.EstimatedHours = parseNonNegative(form.Get("estimated_hours"), in.EstimatedHours, "estimated_hours", errs)
	in.HourlyRate = parseNonNegative(form.Get("hourly_rate"), in.HourlyRate, "hourly_rate", errs)
	in.BaseCost = parseNonNegative(form.Get("base_cost"), in.BaseCost, "base_cost", errs)
	in.DiscountValue = parseNonNegative(form.Get("discount_value"), 0, "discount_value", errs)

	if audience := strings.TrimSpace(form.Get("target_audience")); audience != "" {
		in.TargetAudience = audience
	}

	for _, opt := range options {
		for _, known := range AdditionalOptions {
			if opt == known {
				in.AdditionalOptions = append(in.AdditionalOptions, opt)
				break
			}
		}
	}

	return in, errs
}

// parseNonNegative parses raw as a float, returning def when blank and zero
// when negative.
func parseNonNegative(raw string, def float64, field string, errs map[string]string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs[field] = "Must be a number"
		return def
	}
	if v < 0 {
		return 0
	}
	return v
}
