package dialogue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/intent"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/report"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

// fixedClock pins now to 2025-03-15 so period windows are stable.
func fixedClock() time.Time {
	return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
}

type failingFinancialSource struct{}

func (failingFinancialSource) Fetch(context.Context, string, model.TransactionFilters) ([]model.TransactionRecord, error) {
	return nil, errors.New("upstream down")
}

func seededFinancialSource() *data.MemoryFinancialSource {
	src := data.NewMemoryFinancialSource()
	src.Seed("u1", []model.TransactionRecord{
		{ID: "t1", Date: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), Category: "groceries", AmountCents: 18250, Currency: "EUR", Direction: model.DirectionExpense},
		{ID: "t2", Date: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC), Category: "salary", AmountCents: 200000, Currency: "EUR", Direction: model.DirectionIncome},
		{ID: "t3", Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), Category: "food", AmountCents: 5400, Currency: "EUR", Direction: model.DirectionExpense},
	})
	return src
}

func newFinancePolicy(source data.FinancialDataSource) *FinancePolicy {
	store := locale.NewStore()
	return NewFinancePolicy(
		store,
		NewSuggester(store),
		intent.NewMatcher(store, intent.FinanceRules),
		source,
		report.ListReportTypes(),
		logger.NewNop(),
		fixedClock,
		time.Second,
	)
}

func TestFinancePolicy_SpendingSummary(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "How much did I spend last month?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceSpendingSummary, it.ID)
	assert.Equal(t, model.ResponseInfo, resp.Type)
	assert.Equal(t, "You spent €182.50 last month.", resp.Message)
	require.Len(t, resp.QuickActions, 2)
	assert.Equal(t, "See details", resp.QuickActions[0].Label)
	assert.Equal(t, "Export report", resp.QuickActions[1].Label)
}

func TestFinancePolicy_SpendingSummary_Empty(t *testing.T) {
	p := newFinancePolicy(data.NewMemoryFinancialSource())

	resp, _ := p.Respond(context.Background(), "nobody", model.Query{
		Text:     "How much did I spend today?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, model.ResponseInfo, resp.Type)
	assert.Equal(t, "I found no expenses today.", resp.Message)
}

func TestFinancePolicy_Balance(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "What's my balance?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceBalanceInquiry, it.ID)
	assert.Equal(t, "Your current balance is €1,763.50.", resp.Message)
}

func TestFinancePolicy_BudgetStatus_StatedAmount(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "Set my budget to 512.30 this month",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceBudgetStatus, it.ID)
	// 512.30 sits just below the exact value as a float; the stated budget
	// must still come back as 51230 cents, not 51229.
	assert.Equal(t, "You've used €54.00 of your €512.30 monthly budget.", resp.Message)
}

func TestCentsOf(t *testing.T) {
	tests := []struct {
		euros    float64
		expected int64
	}{
		{512.30, 51230},
		{8.20, 820},
		{0.29, 29},
		{1500, 150000},
		{750.50, 75050},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, centsOf(tt.euros))
	}
}

func TestFinancePolicy_UnsupportedLanguageMatchesEnglish(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	q := "How much did I spend last month?"
	en, enIntent := p.Respond(context.Background(), "u1", model.Query{Text: q, Language: model.LangEnglish})
	de, deIntent := p.Respond(context.Background(), "u1", model.Query{Text: q, Language: "de"})

	assert.Equal(t, en, de)
	assert.Equal(t, enIntent, deIntent)
}

func TestFinancePolicy_FetchFailureBecomesErrorResponse(t *testing.T) {
	p := newFinancePolicy(failingFinancialSource{})

	resp, _ := p.Respond(context.Background(), "u1", model.Query{
		Text:     "How much did I spend last month?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, model.ResponseError, resp.Type)
	assert.Equal(t, "Something went wrong on our side. Please try again in a moment.", resp.Message)
}

func TestFinancePolicy_UnknownOffersSuggestions(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "Sing me a song",
		Language: model.LangEnglish,
	})

	assert.Equal(t, model.IntentUnknown, it.ID)
	assert.Equal(t, model.ResponseInfo, resp.Type)

	want := p.suggester.Suggest(model.VariantFinance, model.LangEnglish, nil)
	require.Len(t, resp.QuickActions, len(want))
	for i, qa := range resp.QuickActions {
		assert.Equal(t, want[i], qa.Label)
		assert.Equal(t, want[i], qa.Value)
	}
}

func TestFinancePolicy_FollowUpRebinding(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text: "and for last month?",
		History: []model.Turn{
			{Role: model.RoleUser, Text: "How much did I spend on groceries?"},
			{Role: model.RoleAssistant, Text: "You spent €54.00 this month."},
		},
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceSpendingSummary, it.ID)
	assert.Equal(t, "groceries", it.Slot(intent.SlotCategory))
	assert.Equal(t, "You spent €182.50 last month.", resp.Message)
}

func TestFinancePolicy_FollowUpOutsideLookbackStaysUnknown(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	history := []model.Turn{
		{Role: model.RoleUser, Text: "How much did I spend?"},
		{Role: model.RoleAssistant, Text: "You spent €54.00 this month."},
		{Role: model.RoleUser, Text: "thanks"},
		{Role: model.RoleAssistant, Text: "Anytime!"},
		{Role: model.RoleUser, Text: "great"},
	}

	_, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "and for last month?",
		History:  history,
		Language: model.LangEnglish,
	})

	assert.Equal(t, model.IntentUnknown, it.ID)
}

func TestFinancePolicy_ExportReport(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "Export my monthly report",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceExportReport, it.ID)
	assert.Equal(t, model.ResponseAction, resp.Type)
	assert.Equal(t, "/app/reports", resp.ActionLink)

	require.Len(t, resp.QuickActions, len(report.ListReportTypes()))
	assert.Equal(t, "report:spending-by-category", resp.QuickActions[0].Value)
}

func TestFinancePolicy_TransactionsLink(t *testing.T) {
	p := newFinancePolicy(seededFinancialSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "Show my transactions from last month",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.FinanceTransactions, it.ID)
	assert.Equal(t, model.ResponseAction, resp.Type)
	assert.Equal(t, "/app/transactions?from=2025-02-01&to=2025-02-28", resp.ActionLink)
}

func TestPeriodWindow(t *testing.T) {
	now := fixedClock()

	tests := []struct {
		name     string
		period   string
		from, to time.Time
		labelKey string
	}{
		{
			name:     "last month",
			period:   "last-month",
			from:     time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			labelKey: "period.last_month",
		},
		{
			name:     "today",
			period:   "today",
			from:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			to:       now,
			labelKey: "period.today",
		},
		{
			name:     "default is this month",
			period:   "",
			from:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			to:       now,
			labelKey: "period.this_month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, labelKey := periodWindow(now, tt.period)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.labelKey, labelKey)
		})
	}
}
