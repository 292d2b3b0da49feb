// Package report renders a one-page PDF execution report for a completed
// Grin program run: its source, the I/O it produced, and its final status.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/williamc15/Project3Final/internal/runstore"
)

// Generate writes a PDF report for run to w, including every I/O event
// recorded for it.
func Generate(w io.Writer, run *runstore.Run, events []runstore.IOEvent) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Grin Run Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	info := []struct{ label, value string }{
		{"Run ID", run.ID},
		{"Status", run.Status},
		{"Started", run.StartedAt.Format(time.RFC3339)},
	}
	if run.FinishedAt != nil {
		info = append(info, struct{ label, value string }{"Finished", run.FinishedAt.Format(time.RFC3339)})
	}
	if run.ErrorMsg != "" {
		info = append(info, struct{ label, value string }{"Error", run.ErrorMsg})
	}
	for _, item := range info {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(35, 7, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, item.value, "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Source", "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 5, run.Source, "", "L", false)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "I/O Events", "", 1, "L", false, 0, "")

	if len(events) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 7, "No I/O recorded.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(220, 220, 220)
		pdf.CellFormat(20, 7, "Line", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 7, "Kind", "1", 0, "L", true, 0, "")
		pdf.CellFormat(0, 7, "Text", "1", 1, "L", true, 0, "")

		pdf.SetFont("Courier", "", 9)
		for _, e := range events {
			pdf.CellFormat(20, 7, fmt.Sprintf("%d", e.Line), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, e.Kind, "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, truncate(e.Text, 80), "1", 1, "L", false, 0, "")
		}
	}

	return pdf.Output(w)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
