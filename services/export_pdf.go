package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateReportPDF creates the pricing report PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateReportPDF(data ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	title := data.Title
	if title == "" {
		title = ReportTitle
	}
	addReportTitle(m, title)

	addSection(m, "Additional Notes:", data.Notes)
	if data.IncludeTerms {
		addSection(m, TermsHeading, TermsPlaceholder)
	}
	if data.IncludePolicy {
		addSection(m, PolicyHeading, PolicyPlaceholder)
	}

	if data.GeneratedDate != "" {
		addReportFooter(m, data.GeneratedDate)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addReportTitle adds the centered report title followed by a spacer.
func addReportTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(row.New(10))
}

// addSection adds a bold heading and one row per line of body text.
func addSection(m core.Maroto, heading, body string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(heading, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	bodyStyle := props.Text{
		Size:  10,
		Align: align.Left,
	}
	for _, line := range splitReportLines(body) {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(line, bodyStyle)),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addReportFooter adds the generated-date line at the bottom.
func addReportFooter(m core.Maroto, date string) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", date),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// splitReportLines normalises line endings and splits body into lines.
// Blank lines are kept as a single space so they still take up a row.
func splitReportLines(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = " "
		}
	}
	return lines
}
