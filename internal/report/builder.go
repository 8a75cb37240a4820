package report

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Builder aggregates raw financial records into normalized report models.
// Given identical underlying data and request, the produced model is
// identical byte for byte once rendered; the clock is injected so tests can
// pin GeneratedAt.
type Builder struct {
	source       data.FinancialDataSource
	clock        func() time.Time
	fetchTimeout time.Duration
}

// NewBuilder creates a report model builder.
func NewBuilder(source data.FinancialDataSource, clock func() time.Time, fetchTimeout time.Duration) *Builder {
	return &Builder{source: source, clock: clock, fetchTimeout: fetchTimeout}
}

// Build validates the request, fetches records and assembles the model.
// Validation failures surface before any fetch is attempted.
func (b *Builder) Build(ctx context.Context, userID string, req model.ReportRequest) (*model.ReportModel, error) {
	if !knownType(req.ReportType) {
		return nil, apperr.Validation(apperr.CodeUnknownReportType, "unsupported report type "+req.ReportType)
	}
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, apperr.Validation(apperr.CodeInvalidDateRange, "date range start is after end")
	}

	lang := model.NormalizeLanguage(string(req.Language))

	fctx, cancel := context.WithTimeout(ctx, b.fetchTimeout)
	defer cancel()

	recs, err := b.source.Fetch(fctx, userID, model.TransactionFilters{
		From:     req.From,
		To:       req.To,
		Category: req.Filters["category"],
	})
	if err != nil {
		return nil, apperr.ExternalFetch("FINANCIAL_FETCH_FAILED", err)
	}

	m := &model.ReportModel{
		Title:       displayName(req.ReportType),
		GeneratedAt: b.clock().UTC(),
	}

	switch req.ReportType {
	case TypeSpendingByCategory:
		buildSpendingByCategory(m, recs, lang)
	case TypeMonthlySummary:
		buildMonthlySummary(m, recs, lang)
	case TypeTransactionHistory:
		buildTransactionHistory(m, recs, lang)
	case TypeSharedExpenses:
		buildSharedExpenses(m, recs, lang)
	}

	return m, nil
}

func buildSpendingByCategory(m *model.ReportModel, recs []model.TransactionRecord, lang model.LanguageCode) {
	m.Columns = []model.ColumnSpec{
		{Key: "category", Title: "Category"},
		{Key: "total", Title: "Total"},
		{Key: "share", Title: "Share"},
	}

	totals := make(map[string]int64)
	currency := "EUR"
	var grand int64
	var count int
	for _, r := range recs {
		if r.Direction != model.DirectionExpense {
			continue
		}
		if r.Currency != "" {
			currency = r.Currency
		}
		totals[r.Category] += r.AmountCents
		grand += r.AmountCents
		count++
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		share := "0.0%"
		if grand > 0 {
			share = strconv.FormatFloat(float64(totals[c])*100/float64(grand), 'f', 1, 64) + "%"
		}
		m.Rows = append(m.Rows, model.Row{Cells: []string{
			c,
			locale.FormatCents(totals[c], currency, lang),
			share,
		}})
	}

	m.Summary = []model.SummaryEntry{
		{Label: "Total spending", Value: locale.FormatCents(grand, currency, lang)},
		{Label: "Transactions", Value: strconv.Itoa(count)},
	}
}

func buildMonthlySummary(m *model.ReportModel, recs []model.TransactionRecord, lang model.LanguageCode) {
	m.Columns = []model.ColumnSpec{
		{Key: "month", Title: "Month"},
		{Key: "income", Title: "Income"},
		{Key: "expenses", Title: "Expenses"},
		{Key: "net", Title: "Net"},
	}

	type monthTotals struct{ income, expenses int64 }
	byMonth := make(map[string]*monthTotals)
	currency := "EUR"
	var totalIncome, totalExpenses int64

	for _, r := range recs {
		if r.Currency != "" {
			currency = r.Currency
		}
		key := r.Date.UTC().Format("2006-01")
		mt := byMonth[key]
		if mt == nil {
			mt = &monthTotals{}
			byMonth[key] = mt
		}
		if r.Direction == model.DirectionIncome {
			mt.income += r.AmountCents
			totalIncome += r.AmountCents
		} else {
			mt.expenses += r.AmountCents
			totalExpenses += r.AmountCents
		}
	}

	months := make([]string, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Strings(months)

	for _, k := range months {
		mt := byMonth[k]
		m.Rows = append(m.Rows, model.Row{Cells: []string{
			k,
			locale.FormatCents(mt.income, currency, lang),
			locale.FormatCents(mt.expenses, currency, lang),
			locale.FormatCents(mt.income-mt.expenses, currency, lang),
		}})
	}

	m.Summary = []model.SummaryEntry{
		{Label: "Total income", Value: locale.FormatCents(totalIncome, currency, lang)},
		{Label: "Total expenses", Value: locale.FormatCents(totalExpenses, currency, lang)},
		{Label: "Net", Value: locale.FormatCents(totalIncome-totalExpenses, currency, lang)},
	}
}

func buildTransactionHistory(m *model.ReportModel, recs []model.TransactionRecord, lang model.LanguageCode) {
	m.Columns = []model.ColumnSpec{
		{Key: "date", Title: "Date"},
		{Key: "category", Title: "Category"},
		{Key: "description", Title: "Description"},
		{Key: "direction", Title: "Direction"},
		{Key: "amount", Title: "Amount"},
	}

	currency := "EUR"
	var totalExpenses int64
	for _, r := range recs {
		if r.Currency != "" {
			currency = r.Currency
		}
		if r.Direction == model.DirectionExpense {
			totalExpenses += r.AmountCents
		}
		m.Rows = append(m.Rows, model.Row{Cells: []string{
			r.Date.UTC().Format("2006-01-02"),
			r.Category,
			r.Description,
			string(r.Direction),
			locale.FormatCents(r.AmountCents, r.Currency, lang),
		}})
	}

	m.Summary = []model.SummaryEntry{
		{Label: "Records", Value: strconv.Itoa(len(recs))},
		{Label: "Total expenses", Value: locale.FormatCents(totalExpenses, currency, lang)},
	}
}

// buildSharedExpenses assumes an even split: each participant owes half of
// every expense shared with them.
func buildSharedExpenses(m *model.ReportModel, recs []model.TransactionRecord, lang model.LanguageCode) {
	m.Columns = []model.ColumnSpec{
		{Key: "participant", Title: "Participant"},
		{Key: "shared_total", Title: "Shared total"},
		{Key: "owed", Title: "Owed to you"},
	}

	totals := make(map[string]int64)
	currency := "EUR"
	var grand int64
	for _, r := range recs {
		if r.Direction != model.DirectionExpense || r.SharedWith == "" {
			continue
		}
		if r.Currency != "" {
			currency = r.Currency
		}
		totals[r.SharedWith] += r.AmountCents
		grand += r.AmountCents
	}

	participants := make([]string, 0, len(totals))
	for p := range totals {
		participants = append(participants, p)
	}
	sort.Strings(participants)

	var owed int64
	for _, p := range participants {
		half := totals[p] / 2
		owed += half
		m.Rows = append(m.Rows, model.Row{Cells: []string{
			p,
			locale.FormatCents(totals[p], currency, lang),
			locale.FormatCents(half, currency, lang),
		}})
	}

	m.Summary = []model.SummaryEntry{
		{Label: "Total shared", Value: locale.FormatCents(grand, currency, lang)},
		{Label: "Owed to you", Value: locale.FormatCents(owed, currency, lang)},
	}
}
