package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	barChartWidth  = 900
	barChartHeight = 420
	pieChartSize   = 600
)

// RenderBarChart draws indicator counts by type as a PNG bar chart.
func RenderBarChart(counts []Count, title string) ([]byte, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("bar chart: no data")
	}

	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, chart.Value{
			Label: c.Label,
			Value: float64(c.N),
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    barChartWidth,
		Height:   barChartHeight,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 20},
		},
		XAxis: chart.Style{TextRotationDegrees: 0},
		Bars:  bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPieChart draws pulse share per adversary as a PNG pie chart.
func RenderPieChart(counts []Count, title string) ([]byte, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("pie chart: no data")
	}

	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		if c.N <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", c.Label, c.N),
			Value: float64(c.N),
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("pie chart: no data")
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  pieChartSize,
		Height: pieChartSize,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}
