package model

import (
	"time"
)

// ReportFormat is an output encoding for a generated report.
type ReportFormat string

const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

// ContentType returns the MIME type for the format.
func (f ReportFormat) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}

// ReportRequest asks for one report to be generated.
type ReportRequest struct {
	ReportType string            `json:"report_type"`
	Format     ReportFormat      `json:"format"`
	From       *time.Time        `json:"from,omitempty"`
	To         *time.Time        `json:"to,omitempty"`
	Language   LanguageCode      `json:"language,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// ReportTypeDescriptor describes one entry of the report catalog.
type ReportTypeDescriptor struct {
	ID               string         `json:"id"`
	DisplayName      string         `json:"display_name"`
	AvailableFormats []ReportFormat `json:"available_formats"`
}

// ColumnSpec describes one report column.
type ColumnSpec struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Row is one report line; it holds exactly one cell per column, in column order.
type Row struct {
	Cells []string `json:"cells"`
}

// SummaryEntry is one pre-formatted summary line. Summary values are
// formatted per locale/currency before rendering; renderers never reformat.
// An ordered slice rather than a map keeps renders byte-deterministic.
type SummaryEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportModel is the normalized, format-independent report content. It is the
// single source of truth rendered identically by every output format.
type ReportModel struct {
	Title       string         `json:"title"`
	GeneratedAt time.Time      `json:"generated_at"`
	Columns     []ColumnSpec   `json:"columns"`
	Rows        []Row          `json:"rows"`
	Summary     []SummaryEntry `json:"summary"`
}

// TransactionDirection separates money in from money out.
type TransactionDirection string

const (
	DirectionIncome  TransactionDirection = "income"
	DirectionExpense TransactionDirection = "expense"
)

// TransactionRecord is one raw financial record as returned by the
// financial data source collaborator.
type TransactionRecord struct {
	ID          string               `json:"id"`
	Date        time.Time            `json:"date"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
	AmountCents int64                `json:"amount_cents"`
	Currency    string               `json:"currency"`
	Direction   TransactionDirection `json:"direction"`
	SharedWith  string               `json:"shared_with,omitempty"`
}

// TransactionFilters narrows a financial data source fetch.
type TransactionFilters struct {
	From     *time.Time
	To       *time.Time
	Category string
}
