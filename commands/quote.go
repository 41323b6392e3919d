package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
)

type quoteOptions struct {
	market       string
	hours        float64
	rate         float64
	base         float64
	discountType string
	discount     float64
	audience     string
	options      []string
}

// NewQuoteCommand returns the "quote" command, which prints a pricing
// breakdown without saving anything.
func NewQuoteCommand(currency string) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate a project price",
		Long: `Calculate the total cost of a project from a base cost, an hourly rate
and the estimated hours, then apply a flat or percentage discount.

Examples:
  pricingtool quote --hours 2 --rate 50 --base 10 --discount 5
  pricingtool quote --hours 3 --rate 20 --base 0 --discount-type Percentage --discount 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts, currency)
		},
	}

	defaults := services.DefaultPricingInput()
	cmd.Flags().StringVar(&opts.market, "market", string(defaults.Market), "market (Market 1, Market 2, Market 3)")
	cmd.Flags().Float64Var(&opts.hours, "hours", defaults.EstimatedHours, "estimated hours per task")
	cmd.Flags().Float64Var(&opts.rate, "rate", defaults.HourlyRate, "hourly rate")
	cmd.Flags().Float64Var(&opts.base, "base", defaults.BaseCost, "fixed base cost")
	cmd.Flags().StringVar(&opts.discountType, "discount-type", string(defaults.DiscountType), "discount type (Flat Rate, Percentage)")
	cmd.Flags().Float64Var(&opts.discount, "discount", 0, "discount value")
	cmd.Flags().StringVar(&opts.audience, "audience", defaults.TargetAudience, "target audience")
	cmd.Flags().StringSliceVar(&opts.options, "option", nil, "additional option (repeatable)")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOptions, currency string) error {
	market, err := services.ParseMarket(opts.market)
	if err != nil {
		return err
	}
	discountType, err := services.ParseDiscountType(opts.discountType)
	if err != nil {
		return err
	}
	for _, v := range []float64{opts.hours, opts.rate, opts.base, opts.discount} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("numeric flags must be finite numbers")
		}
	}

	in := services.PricingInput{
		Market:            market,
		EstimatedHours:    math.Max(opts.hours, 0),
		HourlyRate:        math.Max(opts.rate, 0),
		BaseCost:          math.Max(opts.base, 0),
		DiscountType:      discountType,
		DiscountValue:     math.Max(opts.discount, 0),
		TargetAudience:    strings.TrimSpace(opts.audience),
		AdditionalOptions: opts.options,
	}
	result := services.ComputeTotal(in)

	logging.Debug("quote: computed total",
		zap.String("market", string(in.Market)),
		zap.Float64("total", result.TotalCost),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Pricing Breakdown")
	fmt.Fprintf(out, "  %-20s %s\n", "Market:", in.Market)
	fmt.Fprintf(out, "  %-20s %g\n", "Estimated Hours:", in.EstimatedHours)
	fmt.Fprintf(out, "  %-20s %s\n", "Target Audience:", in.TargetAudience)
	if len(in.AdditionalOptions) > 0 {
		fmt.Fprintf(out, "  %-20s %s\n", "Additional Options:", strings.Join(in.AdditionalOptions, ", "))
	}
	fmt.Fprintf(out, "  %-20s %g hours\n", "Base Cost:", in.BaseCost)
	fmt.Fprintf(out, "  %-20s %g %s/hour\n", "Hourly Rate:", in.HourlyRate, currency)
	fmt.Fprintf(out, "  %-20s %s\n", "Subtotal:", services.FormatMoney(result.Subtotal, currency))
	fmt.Fprintf(out, "  %-20s %g (%s)\n", "Discount Applied:", in.DiscountValue, in.DiscountType)
	fmt.Fprintf(out, "  %-20s %s\n", "Total Cost:", services.FormatMoney(result.TotalCost, currency))
	return nil
}
