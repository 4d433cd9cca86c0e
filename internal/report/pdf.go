package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays out the report document: a title block, both charts, and
// the targeted-country table.
func RenderPDF(ds *Dataset, title string, barPNG, piePNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", ds.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Window: last %s  |  Pulses: %d  |  Indicators: %d",
		formatWindow(ds.Window), ds.TotalPulses, ds.TotalIndicators), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if err := embedPNG(pdf, "type-bar", barPNG, 180, 84); err != nil {
		return nil, err
	}
	pdf.Ln(4)
	if err := embedPNG(pdf, "adversary-pie", piePNG, 110, 110); err != nil {
		return nil, err
	}

	// Country table on its own page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Top Targeted Countries", "", 1, "L", false, 0, "")
	writeCountTable(pdf, "Country", ds.CountryCounts)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Indicators by Type", "", 1, "L", false, 0, "")
	writeCountTable(pdf, "Type", ds.TypeCounts)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func embedPNG(pdf *fpdf.Fpdf, name string, png []byte, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	x := (210 - w) / 2 // center on A4
	pdf.ImageOptions(name, x, pdf.GetY(), w, h, true, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("embed image %s: %s", name, pdf.Error())
	}
	return nil
}

func writeCountTable(pdf *fpdf.Fpdf, labelHeader string, counts []Count) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(120, 8, labelHeader, "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Count", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(counts) == 0 {
		pdf.CellFormat(160, 8, "No data for this window", "1", 1, "L", false, 0, "")
		return
	}
	for _, c := range counts {
		pdf.CellFormat(120, 8, c.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", c.N), "1", 1, "R", false, 0, "")
	}
}

func formatWindow(w time.Duration) string {
	hours := int(w.Hours())
	if hours >= 24 && hours%24 == 0 {
		return fmt.Sprintf("%dd", hours/24)
	}
	return fmt.Sprintf("%dh", hours)
}
