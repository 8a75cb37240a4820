package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/report"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

func newTestReportService() *ReportService {
	source := data.NewMemoryFinancialSource()
	source.Seed("u1", []model.TransactionRecord{
		{ID: "t1", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Category: "groceries", Description: "Supermarket", AmountCents: 10000, Currency: "EUR", Direction: model.DirectionExpense},
	})
	clock := func() time.Time { return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC) }
	builder := report.NewBuilder(source, clock, time.Second)
	return NewReportService(builder, nil, logger.NewNop())
}

func TestReportService_GenerateReport_CSV(t *testing.T) {
	svc := newTestReportService()

	got, err := svc.GenerateReport(context.Background(), "u1", model.ReportRequest{
		ReportType: report.TypeSpendingByCategory,
		Format:     model.FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "spending-by-category_20250315.csv", got.Filename)
	assert.Equal(t, "text/csv", got.ContentType)
	assert.Contains(t, string(got.Data), "groceries,€100.00,100.0%")
}

func TestReportService_GenerateReport_PDF(t *testing.T) {
	svc := newTestReportService()

	got, err := svc.GenerateReport(context.Background(), "u1", model.ReportRequest{
		ReportType: report.TypeSpendingByCategory,
		Format:     model.FormatPDF,
	})
	require.NoError(t, err)

	assert.Equal(t, "spending-by-category_20250315.pdf", got.Filename)
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.True(t, bytes.HasPrefix(got.Data, []byte("%PDF-")))
}

func TestReportService_GenerateReport_UnknownFormat(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.GenerateReport(context.Background(), "u1", model.ReportRequest{
		ReportType: report.TypeSpendingByCategory,
		Format:     "xlsx",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, apperr.CodeUnknownFormat, apperr.CodeOf(err))
}

func TestReportService_ListReportTypes(t *testing.T) {
	svc := newTestReportService()

	types := svc.ListReportTypes()
	require.Len(t, types, 4)
	assert.Equal(t, report.TypeSpendingByCategory, types[0].ID)
	for _, d := range types {
		assert.ElementsMatch(t, []model.ReportFormat{model.FormatCSV, model.FormatPDF}, d.AvailableFormats)
	}
}
