package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is appended to formatted amounts when no other code is set.
const DefaultCurrency = "EUR"

// FormatMoney formats amount with two decimal places, comma thousands
// separators and a trailing currency code, e.g. "1,234.56 EUR".
// Rounding is half away from zero on the decimal value of amount.
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return FormatAmount(amount) + " " + currency
}

// FormatAmount formats amount with two decimal places and comma thousands
// separators, without a currency code.
func FormatAmount(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	negative := d.IsNegative()
	raw := d.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := applyThousandsGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts a comma every three digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
