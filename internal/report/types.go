// Package report builds normalized report models from raw financial records
// and renders them into CSV and PDF. Both renderers consume the same frozen
// ReportModel, which guarantees cross-format content equivalence.
package report

import (
	"time"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Report type IDs. The catalog is closed: requests for any other ID are
// rejected before data is fetched.
const (
	TypeSpendingByCategory = "spending-by-category"
	TypeMonthlySummary     = "monthly-summary"
	TypeTransactionHistory = "transaction-history"
	TypeSharedExpenses     = "shared-expenses"
)

var allFormats = []model.ReportFormat{model.FormatCSV, model.FormatPDF}

var catalog = []model.ReportTypeDescriptor{
	{ID: TypeSpendingByCategory, DisplayName: "Spending by category", AvailableFormats: allFormats},
	{ID: TypeMonthlySummary, DisplayName: "Monthly summary", AvailableFormats: allFormats},
	{ID: TypeTransactionHistory, DisplayName: "Transaction history", AvailableFormats: allFormats},
	{ID: TypeSharedExpenses, DisplayName: "Shared expenses", AvailableFormats: allFormats},
}

// ListReportTypes returns the static report catalog in declaration order.
func ListReportTypes() []model.ReportTypeDescriptor {
	out := make([]model.ReportTypeDescriptor, len(catalog))
	copy(out, catalog)
	return out
}

func knownType(id string) bool {
	for _, d := range catalog {
		if d.ID == id {
			return true
		}
	}
	return false
}

func displayName(id string) string {
	for _, d := range catalog {
		if d.ID == id {
			return d.DisplayName
		}
	}
	return id
}

// Filename derives the download name: {reportType}_{YYYYMMDD}.{ext}.
func Filename(reportType string, generatedAt time.Time, format model.ReportFormat) string {
	return reportType + "_" + generatedAt.UTC().Format("20060102") + "." + string(format)
}
