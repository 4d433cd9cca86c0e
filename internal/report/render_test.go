package report

import (
	"bytes"
	"testing"
	"time"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderBarChart(t *testing.T) {
	counts := []Count{
		{Label: "IPv4", N: 12},
		{Label: "domain", N: 7},
		{Label: "FileHash-SHA256", N: 3},
	}

	png, err := RenderBarChart(counts, "Indicators by Type")
	if err != nil {
		t.Fatalf("RenderBarChart() error: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestRenderBarChartEmpty(t *testing.T) {
	if _, err := RenderBarChart(nil, "empty"); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestRenderPieChart(t *testing.T) {
	counts := []Count{
		{Label: "APT-1", N: 4},
		{Label: "Other", N: 2},
	}

	png, err := RenderPieChart(counts, "Pulses by Adversary")
	if err != nil {
		t.Fatalf("RenderPieChart() error: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPieChartAllZero(t *testing.T) {
	if _, err := RenderPieChart([]Count{{Label: "x", N: 0}}, "zero"); err == nil {
		t.Error("expected error when all values are zero")
	}
}

func TestRenderPDF(t *testing.T) {
	ds := BuildDataset(testPulses(), Options{
		TopTypes:       5,
		TopAdversaries: 5,
		TopCountries:   5,
		Window:         7 * 24 * time.Hour,
	})

	bar, err := RenderBarChart(ds.TypeCounts, "Indicators by Type")
	if err != nil {
		t.Fatalf("bar chart: %v", err)
	}
	pie, err := RenderPieChart(ds.AdversaryCounts, "Pulses by Adversary")
	if err != nil {
		t.Fatalf("pie chart: %v", err)
	}

	pdf, err := RenderPDF(ds, "Weekly Threat Intelligence Report", bar, pie)
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}
