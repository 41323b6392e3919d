package services

import (
	"math"
	"net/url"
	"testing"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name           string
		input          PricingInput
		expectSubtotal float64
		expectTotal    float64
	}{
		{
			name:           "flat discount",
			input:          PricingInput{BaseCost: 10, HourlyRate: 50, EstimatedHours: 2, DiscountType: DiscountFlat, DiscountValue: 5},
			expectSubtotal: 110,
			expectTotal:    105,
		},
		{
			name:           "percentage discount",
			input:          PricingInput{BaseCost: 0, HourlyRate: 20, EstimatedHours: 3, DiscountType: DiscountPercentage, DiscountValue: 10},
			expectSubtotal: 60,
			expectTotal:    54,
		},
		{
			name:           "no discount",
			input:          PricingInput{BaseCost: 10, HourlyRate: 50, EstimatedHours: 1, DiscountType: DiscountFlat},
			expectSubtotal: 60,
			expectTotal:    60,
		},
		{
			name:           "flat discount exceeds subtotal",
			input:          PricingInput{BaseCost: 10, HourlyRate: 0, EstimatedHours: 0, DiscountType: DiscountFlat, DiscountValue: 25},
			expectSubtotal: 10,
			expectTotal:    -15,
		},
		{
			name:           "percentage over one hundred",
			input:          PricingInput{BaseCost: 100, DiscountType: DiscountPercentage, DiscountValue: 150},
			expectSubtotal: 100,
			expectTotal:    -50,
		},
		{
			name:           "all zero",
			input:          PricingInput{DiscountType: DiscountPercentage},
			expectSubtotal: 0,
			expectTotal:    0,
		},
		{
			name:           "unknown discount type ignored",
			input:          PricingInput{BaseCost: 10, DiscountType: "", DiscountValue: 5},
			expectSubtotal: 10,
			expectTotal:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.input)
			if math.Abs(got.Subtotal-tt.expectSubtotal) > 0.001 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.expectSubtotal)
			}
			if math.Abs(got.TotalCost-tt.expectTotal) > 0.001 {
				t.Errorf("TotalCost = %v, want %v", got.TotalCost, tt.expectTotal)
			}
		})
	}
}

func TestComputeTotal_ZeroDiscountIsExactSubtotal(t *testing.T) {
	values := []float64{0, 0.1, 0.3, 1, 2.5, 7.77, 50, 1234.56}
	for _, base := range values {
		for _, rate := range values {
			for _, hours := range values {
				want := base + rate*hours
				for _, dt := range DiscountTypes {
					got := ComputeTotal(PricingInput{BaseCost: base, HourlyRate: rate, EstimatedHours: hours, DiscountType: dt})
					if got.TotalCost != want {
						t.Fatalf("ComputeTotal(base=%v rate=%v hours=%v %s, 0) = %v, want exactly %v",
							base, rate, hours, dt, got.TotalCost, want)
					}
				}
			}
		}
	}
}

func TestComputeTotal_FlatDiscountSubtracts(t *testing.T) {
	base := PricingInput{BaseCost: 12.5, HourlyRate: 40, EstimatedHours: 3.25, DiscountType: DiscountFlat}
	undiscounted := ComputeTotal(base).TotalCost

	for _, d := range []float64{0, 1, 12.5, 142.5, 1000} {
		in := base
		in.DiscountValue = d
		got := ComputeTotal(in).TotalCost
		if got != undiscounted-d {
			t.Errorf("flat discount %v: got %v, want %v", d, got, undiscounted-d)
		}
	}
}

func TestComputeTotal_PercentageDiscountScales(t *testing.T) {
	base := PricingInput{BaseCost: 30, HourlyRate: 45, EstimatedHours: 6, DiscountType: DiscountPercentage}
	subtotal := ComputeTotal(base).Subtotal

	for _, p := range []float64{0, 5, 12.5, 50, 100} {
		in := base
		in.DiscountValue = p
		got := ComputeTotal(in).TotalCost
		want := subtotal * (1 - p/100)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("percentage discount %v: got %v, want %v", p, got, want)
		}
	}
}

func TestParseMarket(t *testing.T) {
	tests := []struct {
		input   string
		want    Market
		wantErr bool
	}{
		{"Market 1", Market1, false},
		{"market2", Market2, false},
		{" 3 ", Market3, false},
		{"MARKET 3", Market3, false},
		{"Market 4", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMarket(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMarket(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMarket(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDiscountType(t *testing.T) {
	tests := []struct {
		input   string
		want    DiscountType
		wantErr bool
	}{
		{"Flat Rate", DiscountFlat, false},
		{"flat", DiscountFlat, false},
		{"Percentage", DiscountPercentage, false},
		{"percent", DiscountPercentage, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDiscountType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDiscountType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDiscountType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePricingForm_Defaults(t *testing.T) {
	in, errs := ParsePricingForm(url.Values{}, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Market != Market1 {
		t.Errorf("market = %q, want %q", in.Market, Market1)
	}
	if in.EstimatedHours != DefaultEstimatedHours || in.BaseCost != DefaultBaseCost || in.HourlyRate != DefaultHourlyRate {
		t.Errorf("unexpected defaults: %+v", in)
	}
	if in.DiscountType != DiscountFlat || in.DiscountValue != 0 {
		t.Errorf("unexpected discount defaults: %+v", in)
	}
	if in.TargetAudience != DefaultTargetAudience {
		t.Errorf("target audience = %q", in.TargetAudience)
	}
}

func TestParsePricingForm_Values(t *testing.T) {
	form := url.Values{
		"market":          {"Market 2"},
		"estimated_hours": {"2"},
		"hourly_rate":     {"50"},
		"base_cost":       {"10"},
		"discount_type":   {"Flat Rate"},
		"discount_value":  {"5"},
		"target_audience": {"  SMB  "},
	}
	in, errs := ParsePricingForm(form, []string{"Option B", "Option Z"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Market != Market2 {
		t.Errorf("market = %q", in.Market)
	}
	if in.TargetAudience != "SMB" {
		t.Errorf("target audience = %q", in.TargetAudience)
	}
	if len(in.AdditionalOptions) != 1 || in.AdditionalOptions[0] != "Option B" {
		t.Errorf("additional options = %v", in.AdditionalOptions)
	}
	if got := ComputeTotal(in).TotalCost; got != 105 {
		t.Errorf("total = %v, want 105", got)
	}
}

func TestParsePricingForm_NegativeClampedAndInvalidReported(t *testing.T) {
	form := url.Values{
		"estimated_hours": {"-4"},
		"hourly_rate":     {"abc"},
		"discount_value":  {"NaN"},
		"market":          {"Market 9"},
	}
	in, errs := ParsePricingForm(form, nil)
	if in.EstimatedHours != 0 {
		t.Errorf("estimated hours = %v, want 0", in.EstimatedHours)
	}
	for _, field := range []string{"hourly_rate", "discount_value", "market"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
	if _, ok := errs["estimated_hours"]; ok {
		t.Error("negative hours should be clamped, not reported")
	}
}
