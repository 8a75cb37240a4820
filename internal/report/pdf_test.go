package report

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

func TestRenderPDF_Structure(t *testing.T) {
	out, err := RenderPDF(testModel())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	// Streams are uncompressed, so cell text is inspectable in the raw output.
	assert.Contains(t, string(out), "Transaction history")
	assert.Contains(t, string(out), "Supermarket")
	assert.Contains(t, string(out), "Total expenses")
	assert.Contains(t, string(out), "Generated 2025-03-15T10:00:00Z")
}

// TestRenderPDF_ContentMatchesModel checks every model value against the raw
// output, so the PDF carries exactly the rows the CSV renderer gets. Cell
// text goes through the cp1252 translator on the way in; expectations are
// translated the same way so non-ASCII values (currency symbols) stay
// checkable.
func TestRenderPDF_ContentMatchesModel(t *testing.T) {
	m := testModel()
	out, err := RenderPDF(m)
	require.NoError(t, err)

	tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")
	text := string(out)

	assert.Contains(t, text, tr(m.Title))
	for _, c := range m.Columns {
		assert.Contains(t, text, tr(c.Title))
	}
	for _, row := range m.Rows {
		for _, cell := range row.Cells {
			assert.Contains(t, text, tr(cell))
		}
	}
	for _, entry := range m.Summary {
		assert.Contains(t, text, tr(entry.Label))
		assert.Contains(t, text, tr(entry.Value))
	}
}

func TestRenderPDF_EmptyModel(t *testing.T) {
	m := &model.ReportModel{
		Title:   "Shared expenses",
		Columns: []model.ColumnSpec{{Key: "participant", Title: "Participant"}},
		Summary: []model.SummaryEntry{{Label: "Total shared", Value: "€0.00"}},
	}

	out, err := RenderPDF(m)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "Shared expenses")
}
