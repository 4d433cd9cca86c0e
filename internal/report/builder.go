package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"briefkit/internal/feed"
)

// PulseFetcher is the slice of the feed client the builder needs
type PulseFetcher interface {
	FetchPulses(ctx context.Context) ([]feed.Pulse, error)
}

// Builder produces the report PDF from a feed
type Builder struct {
	fetcher   PulseFetcher
	title     string
	outputDir string
	opts      Options
}

func NewBuilder(fetcher PulseFetcher, title, outputDir string, opts Options) *Builder {
	return &Builder{
		fetcher:   fetcher,
		title:     title,
		outputDir: outputDir,
		opts:      opts,
	}
}

// Result describes one completed report run
type Result struct {
	Path    string
	Dataset *Dataset
}

// Run fetches the feed, builds the dataset and charts, renders the PDF, and
// writes it to the output directory with a dated filename.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	pulses, err := b.fetcher.FetchPulses(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pulses: %w", err)
	}
	if len(pulses) == 0 {
		return nil, fmt.Errorf("no pulses in window, skipping report")
	}

	ds := BuildDataset(pulses, b.opts)
	log.Printf("report: dataset built: %d pulses, %d indicators, %d types",
		ds.TotalPulses, ds.TotalIndicators, len(ds.TypeCounts))

	barPNG, err := RenderBarChart(ds.TypeCounts, "Indicators by Type")
	if err != nil {
		return nil, err
	}
	piePNG, err := RenderPieChart(ds.AdversaryCounts, "Pulses by Adversary")
	if err != nil {
		return nil, err
	}

	pdfData, err := RenderPDF(ds, b.title, barPNG, piePNG)
	if err != nil {
		return nil, err
	}

	outDir := b.outputDir
	if outDir == "" {
		outDir = os.TempDir()
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("threat-report-%s.pdf", ds.GeneratedAt.Format("2006-01-02")))
	if err := os.WriteFile(path, pdfData, 0644); err != nil {
		return nil, fmt.Errorf("write report file: %w", err)
	}

	log.Printf("report: wrote %s (%d bytes) in %v", path, len(pdfData), time.Since(start))
	return &Result{Path: path, Dataset: ds}, nil
}
