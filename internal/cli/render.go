package cli

import (
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/util"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	boldCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	boldRed    = color.New(color.FgRed, color.Bold).SprintFunc()
	boldYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func (app *App) printReport(rep *domain.CategoryReport, drilldown bool) {
	title := rep.Month
	if pretty, err := util.FormatMonth(rep.Month); err == nil {
		title = pretty
	}
	fmt.Fprintln(app.out, boldCyan("Spending by category: "+title))

	if rep.SentinelCollision {
		fmt.Fprintln(app.out, pterm.Warning.Sprintf("A category uses the reserved id %q; its drill-down is shown as uncategorized", domain.UncategorizedID))
	}

	if len(rep.Categories) == 0 {
		fmt.Fprintln(app.out, pterm.Info.Sprint("No spending recorded for this month"))
		return
	}

	data := pterm.TableData{{"Category", "Total", "Share"}}
	for _, c := range rep.Categories {
		data = append(data, []string{c.DisplayName, c.Total.StringFixed(2), share(c, rep)})
	}
	data = append(data, []string{"Total", boldRed(rep.Total.StringFixed(2)), ""})
	app.printTable(data)

	if !drilldown {
		return
	}
	for _, c := range rep.Categories {
		fmt.Fprintln(app.out)
		fmt.Fprintln(app.out, boldYellow(c.DisplayName))
		rows := pterm.TableData{{"Note", "Amount"}}
		for _, n := range c.Breakdown {
			rows = append(rows, []string{n.Note, n.Amount.StringFixed(2)})
		}
		app.printTable(rows)
	}
}

func (app *App) printMonths(months []domain.MonthOption) {
	data := pterm.TableData{{"Month", "Name"}}
	for _, m := range months {
		data = append(data, []string{m.Name, m.Pretty})
	}
	app.printTable(data)
}

func (app *App) printTable(data pterm.TableData) {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprintln(app.out, pterm.Error.Sprint(err))
		return
	}
	fmt.Fprintln(app.out, table)
}

func share(c domain.CategoryTotal, rep *domain.CategoryReport) string {
	if rep.Total.IsZero() {
		return "-"
	}
	return c.Total.Div(rep.Total).Shift(2).StringFixed(1) + "%"
}
