package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// RenderCSV renders the model as RFC-4180 CSV: a header row from the
// columns, one record per row, then a blank line and the summary block.
// Two renders of the same model are byte-identical.
func RenderCSV(m *model.ReportModel) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		header[i] = c.Title
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range m.Rows {
		if err := w.Write(row.Cells); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush rows: %w", err)
	}

	buf.WriteByte('\n')

	sw := csv.NewWriter(&buf)
	for _, entry := range m.Summary {
		if err := sw.Write([]string{entry.Label, entry.Value}); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush summary: %w", err)
	}

	return buf.Bytes(), nil
}
