package report

import (
	"testing"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChart(t *testing.T) {
	totals := Aggregate([]*domain.Transaction{
		tx("1", "food", "a", -100),
		tx("2", "food", "b", -400),
		tx("3", "", "", -250),
	}, testCategories)

	chart := BuildChart(totals)

	assert.Equal(t, "pie", chart.Type)
	assert.True(t, chart.ShowInLegend)
	assert.Equal(t, "{point.y:,.2f}", chart.TooltipFormat)
	assert.Equal(t, "{point.name}: {point.y:,.0f}", chart.DataLabelFormat)
	assert.Equal(t, "Categories", chart.Series.Name)
	assert.True(t, chart.Series.ColorByPoint)

	require.Len(t, chart.Series.Points, 2)
	assert.Equal(t, domain.PiePoint{Name: "Food", Y: 5, Drilldown: "food"}, chart.Series.Points[0])
	assert.Equal(t, domain.PiePoint{Name: "None", Y: 2.5, Drilldown: "none"}, chart.Series.Points[1])

	require.Len(t, chart.Drilldown, 2)
	assert.Equal(t, "food", chart.Drilldown[0].ID)
	assert.Equal(t, "Food", chart.Drilldown[0].Name)
	assert.Equal(t, []domain.DrilldownPoint{{Label: "a", Y: 1}, {Label: "b", Y: 4}}, chart.Drilldown[0].Points)
	assert.Equal(t, "none", chart.Drilldown[1].ID)
	assert.Equal(t, []domain.DrilldownPoint{{Label: "", Y: 2.5}}, chart.Drilldown[1].Points)
}

func TestBuildChart_Empty(t *testing.T) {
	chart := BuildChart(nil)

	assert.NotNil(t, chart.Series.Points)
	assert.Empty(t, chart.Series.Points)
	assert.NotNil(t, chart.Drilldown)
	assert.Empty(t, chart.Drilldown)
}

func TestBuildChart_IndependentValues(t *testing.T) {
	totals := Aggregate([]*domain.Transaction{tx("1", "food", "a", -100)}, testCategories)

	first := BuildChart(totals)
	second := BuildChart(totals)
	first.Series.Points[0].Name = "changed"
	first.Drilldown[0].Points[0].Label = "changed"

	assert.Equal(t, "Food", second.Series.Points[0].Name)
	assert.Equal(t, "a", second.Drilldown[0].Points[0].Label)
}
