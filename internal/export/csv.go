package export

import (
	"encoding/csv"
	"io"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

var csvHeader = []string{"Category ID", "Category", "Note", "Amount"}

// RenderCSV writes one row per note bucket followed by a grand total row
func RenderCSV(w io.Writer, report *domain.CategoryReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, category := range report.Categories {
		for _, entry := range category.Breakdown {
			record := []string{
				category.CategoryID,
				category.DisplayName,
				entry.Note,
				entry.Amount.StringFixed(moneyPlaces),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	if err := writer.Write([]string{"", "Total", "", report.Total.StringFixed(moneyPlaces)}); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
