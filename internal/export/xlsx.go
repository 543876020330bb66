package export

import (
	"fmt"
	"io"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Categories"
	breakdownSheet = "Breakdown"
)

// RenderXLSX writes a workbook with a per-category summary sheet and a per-note breakdown sheet
func RenderXLSX(w io.Writer, report *domain.CategoryReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return err
	}

	summary := [][]interface{}{{"Category ID", "Category", "Total"}}
	breakdown := [][]interface{}{{"Category ID", "Category", "Note", "Amount"}}
	for _, category := range report.Categories {
		summary = append(summary, []interface{}{category.CategoryID, category.DisplayName, category.Total.InexactFloat64()})
		for _, entry := range category.Breakdown {
			breakdown = append(breakdown, []interface{}{category.CategoryID, category.DisplayName, entry.Note, entry.Amount.InexactFloat64()})
		}
	}
	summary = append(summary, []interface{}{"", "Total", report.Total.InexactFloat64()})

	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}
	if err := writeRows(f, breakdownSheet, breakdown); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
