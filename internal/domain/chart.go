package domain

// ChartDescription is an immutable description of the two-level pie chart.
// It is built fresh for every report and handed to the presentation layer as-is.
type ChartDescription struct {
	Type            string            `json:"type"`
	TooltipFormat   string            `json:"tooltipFormat"`
	DataLabelFormat string            `json:"dataLabelFormat"`
	ShowInLegend    bool              `json:"showInLegend"`
	Series          PieSeries         `json:"series"`
	Drilldown       []DrilldownSeries `json:"drilldown"`
}

type PieSeries struct {
	Name         string     `json:"name"`
	ColorByPoint bool       `json:"colorByPoint"`
	Points       []PiePoint `json:"data"`
}

type PiePoint struct {
	Name      string  `json:"name"`
	Y         float64 `json:"y"`
	Drilldown string  `json:"drilldown"`
}

type DrilldownSeries struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Points []DrilldownPoint `json:"data"`
}

type DrilldownPoint struct {
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}
