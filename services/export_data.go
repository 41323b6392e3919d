package services

import "github.com/shopspring/decimal"

// Placeholder texts used by the PDF report sections.
const (
	ReportTitle       = "Pricing Tool Report"
	TermsHeading      = "Terms and Conditions:"
	TermsPlaceholder  = "[Placeholder terms]"
	PolicyHeading     = "Privacy Policy:"
	PolicyPlaceholder = "[Placeholder policy]"
	ReportFilename    = "pricing_tool_report.pdf"
)

// ReportData holds everything rendered into the PDF report.
type ReportData struct {
	Title         string
	Notes         string
	IncludeTerms  bool
	IncludePolicy bool
	GeneratedDate string
}

// HistoryExport holds the saved projects for the spreadsheet export.
type HistoryExport struct {
	Title         string
	GeneratedDate string
	Currency      string
	Records       []ProjectRecord
}

// GrandTotal sums the total cost of every record. The sum is taken in
// decimal so it does not depend on record order.
func (h HistoryExport) GrandTotal() float64 {
	sum := decimal.Zero
	for _, r := range h.Records {
		sum = sum.Add(decimal.NewFromFloat(r.TotalCost))
	}
	return sum.InexactFloat64()
}
