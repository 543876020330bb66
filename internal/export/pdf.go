package export

import (
	"fmt"
	"io"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/util"
	"github.com/jung-kurt/gofpdf"
)

var (
	headerColor     = [3]int{31, 73, 125}
	headerTextColor = [3]int{255, 255, 255}
	sectionColor    = [3]int{31, 73, 125}
	bodyTextColor   = [3]int{50, 50, 50}
	lineColor       = [3]int{200, 200, 200}
)

const (
	pageWidth   = 190.0
	noteWidth   = 140.0
	amountWidth = pageWidth - noteWidth
)

// RenderPDF writes an A4 document with a summary table and one section per category
func RenderPDF(w io.Writer, report *domain.CategoryReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := report.Month
	if pretty, err := util.FormatMonth(report.Month); err == nil {
		title = pretty
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr("Generated "+report.GeneratedAt.Format("2006-01-02 15:04")), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Spending by category: "+title), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	drawHeading := func(text string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionColor[0], sectionColor[1], sectionColor[2])
		pdf.Cell(0, 8, tr(text))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pageWidth, pdf.GetY())
		pdf.Ln(2)
	}

	drawRow := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(noteWidth, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 6, amount, "", 1, "R", false, 0, "")
	}

	drawHeading("Summary")
	if len(report.Categories) == 0 {
		drawRow("No spending recorded", "", false)
	}
	for _, category := range report.Categories {
		drawRow(category.DisplayName, category.Total.StringFixed(moneyPlaces), false)
	}
	drawRow("Total", report.Total.StringFixed(moneyPlaces), true)
	pdf.Ln(6)

	for _, category := range report.Categories {
		drawHeading(category.DisplayName)
		for _, entry := range category.Breakdown {
			note := entry.Note
			if note == "" {
				note = "(no note)"
			}
			drawRow(note, entry.Amount.StringFixed(moneyPlaces), false)
		}
		drawRow("Total", category.Total.StringFixed(moneyPlaces), true)
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF: %w", err)
	}
	return nil
}
