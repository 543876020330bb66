package cli

import (
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository/storage"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *App) byCategoriesCommand() *cobra.Command {
	var (
		month     string
		drilldown bool
		formats   []string
		dir       string
	)

	cmd := &cobra.Command{
		Use:   "by-categories",
		Short: "Show spending per category for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]domain.ExportFormat, 0, len(formats))
			for _, f := range formats {
				format, err := domain.ParseExportFormat(f)
				if err != nil {
					return err
				}
				parsed = append(parsed, format)
			}

			return app.withServices(cmd.Context(), func(s *Services) error {
				rep, err := s.Reports.ByCategories(cmd.Context(), month)
				if err != nil {
					return err
				}

				app.printReport(rep, drilldown)

				if len(parsed) == 0 {
					return nil
				}
				return app.exportReport(cmd, s.Reports, rep.Month, parsed, dir)
			})
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to report on, YYYY-MM (default: current month)")
	cmd.Flags().BoolVarP(&drilldown, "drilldown", "D", false, "Show the per-note breakdown of every category")
	cmd.Flags().StringSliceVarP(&formats, "export", "e", nil, "Export formats: csv, json, pdf, xlsx (comma-separated)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to save exported reports")

	return cmd
}

func (app *App) monthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List months that have recorded activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withServices(cmd.Context(), func(s *Services) error {
				months, err := s.Months.AvailableMonths(cmd.Context())
				if err != nil {
					return err
				}
				app.printMonths(months)
				return nil
			})
		},
	}
}

func (app *App) exportReport(cmd *cobra.Command, reports *service.ReportService, month string, formats []domain.ExportFormat, dir string) error {
	store, err := storage.NewLocalExportStore(dir)
	if err != nil {
		return err
	}
	exporter := service.NewExportService(reports, store)

	for _, format := range formats {
		result, err := exporter.Export(cmd.Context(), month, format)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		fmt.Fprintln(app.out, pterm.Success.Sprintf("Saved %s report to %s", format, result.Location))
	}
	return nil
}
