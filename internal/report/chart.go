package report

import "github.com/dafibh/fortuna/fortuna-reports/internal/domain"

const (
	chartType       = "pie"
	seriesName      = "Categories"
	tooltipFormat   = "{point.y:,.2f}"
	dataLabelFormat = "{point.name}: {point.y:,.0f}"
)

// BuildChart describes the pie chart and its drill-down series for a set of totals
func BuildChart(totals []domain.CategoryTotal) domain.ChartDescription {
	points := make([]domain.PiePoint, 0, len(totals))
	drilldown := make([]domain.DrilldownSeries, 0, len(totals))

	for _, t := range totals {
		points = append(points, domain.PiePoint{
			Name:      t.DisplayName,
			Y:         t.Total.InexactFloat64(),
			Drilldown: t.CategoryID,
		})

		data := make([]domain.DrilldownPoint, 0, len(t.Breakdown))
		for _, n := range t.Breakdown {
			data = append(data, domain.DrilldownPoint{Label: n.Note, Y: n.Amount.InexactFloat64()})
		}
		drilldown = append(drilldown, domain.DrilldownSeries{
			ID:     t.CategoryID,
			Name:   t.DisplayName,
			Points: data,
		})
	}

	return domain.ChartDescription{
		Type:            chartType,
		TooltipFormat:   tooltipFormat,
		DataLabelFormat: dataLabelFormat,
		ShowInLegend:    true,
		Series: domain.PieSeries{
			Name:         seriesName,
			ColorByPoint: true,
			Points:       points,
		},
		Drilldown: drilldown,
	}
}
