package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

const (
	pdfTableWidth = 190.0
	pdfRowHeight  = 7.0
)

// RenderPDF renders the model as a simple tabular document: title,
// generation timestamp, bordered table, summary block. Content and order
// match the CSV renderer exactly; only the layout differs. Streams are left
// uncompressed so the text content stays inspectable.
func RenderPDF(m *model.ReportModel) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pdfTableWidth, 10, tr(m.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(pdfTableWidth, 6, "Generated "+m.GeneratedAt.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidth := pdfTableWidth
	if len(m.Columns) > 0 {
		colWidth = pdfTableWidth / float64(len(m.Columns))
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range m.Columns {
		pdf.CellFormat(colWidth, pdfRowHeight, tr(c.Title), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range m.Rows {
		for _, cell := range row.Cells {
			pdf.CellFormat(colWidth, pdfRowHeight, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	for _, entry := range m.Summary {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pdfTableWidth/2, pdfRowHeight, tr(entry.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(pdfTableWidth/2, pdfRowHeight, tr(entry.Value), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
