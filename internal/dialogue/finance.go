package dialogue

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/intent"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
	"github.com/fintrip-ai/assistant-platform/pkg/metrics"
)

// defaultBudgetCents is assumed when the user has not set a monthly budget.
const defaultBudgetCents = 150000

// FinancePolicy answers finance-variant queries.
type FinancePolicy struct {
	responder
	matcher      *intent.Matcher
	source       data.FinancialDataSource
	clock        func() time.Time
	fetchTimeout time.Duration
	reportTypes  []model.ReportTypeDescriptor
}

// NewFinancePolicy wires the finance policy set.
func NewFinancePolicy(
	store *locale.Store,
	suggester *Suggester,
	matcher *intent.Matcher,
	source data.FinancialDataSource,
	reportTypes []model.ReportTypeDescriptor,
	log *logger.Logger,
	clock func() time.Time,
	fetchTimeout time.Duration,
) *FinancePolicy {
	return &FinancePolicy{
		responder:    responder{store: store, suggester: suggester, logger: log},
		matcher:      matcher,
		source:       source,
		clock:        clock,
		fetchTimeout: fetchTimeout,
		reportTypes:  reportTypes,
	}
}

// Respond classifies the query and builds the response. External fetch
// failures become a localized error response; nothing propagates raw.
func (p *FinancePolicy) Respond(ctx context.Context, userID string, q model.Query) (model.ChatbotResponse, model.Intent) {
	lang := model.NormalizeLanguage(string(q.Language))
	it := p.matcher.Match(q.Text, lang, intent.Context{})
	it = p.rebindFollowUp(it, q.History, lang)

	switch it.ID {
	case intent.FinanceGreeting:
		return p.simple("greeting", lang, []model.QuickAction{
			p.quickAction("qa.check_balance", "What's my balance?", lang),
			p.quickAction("qa.budget_status", "Am I over my budget?", lang),
		}), it
	case intent.FinanceHelp:
		return p.simple("help.finance", lang, nil), it
	case intent.FinanceSpendingSummary:
		return p.spendingSummary(ctx, userID, it, lang), it
	case intent.FinanceBalanceInquiry:
		return p.balance(ctx, userID, lang), it
	case intent.FinanceBudgetStatus:
		return p.budgetStatus(ctx, userID, it, lang), it
	case intent.FinanceTransactions:
		return p.transactions(it, lang), it
	case intent.FinanceExportReport:
		return p.exportReport(lang), it
	case intent.FinanceSavingsAdvice:
		return p.simple("finance.savings", lang, []model.QuickAction{
			p.quickAction("qa.budget_status", "Am I over my budget?", lang),
		}), it
	default:
		return p.unknownResponse(model.VariantFinance, lang, nil), it
	}
}

// rebindFollowUp resolves bare period follow-ups ("and for last month?")
// onto the intent of a recent user turn. Only the trailing lookback window
// is consulted, and only period-bearing intents are eligible.
func (p *FinancePolicy) rebindFollowUp(it model.Intent, history []model.Turn, lang model.LanguageCode) model.Intent {
	if it.ID != model.IntentUnknown || it.Slot(intent.SlotPeriod) == "" {
		return it
	}

	start := len(history) - historyLookback
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		if history[i].Role != model.RoleUser {
			continue
		}
		prev := p.matcher.Match(history[i].Text, lang, intent.Context{})
		switch prev.ID {
		case intent.FinanceSpendingSummary, intent.FinanceTransactions, intent.FinanceBudgetStatus:
			slots := map[string]string{intent.SlotPeriod: it.Slot(intent.SlotPeriod)}
			if c := prev.Slot(intent.SlotCategory); c != "" {
				slots[intent.SlotCategory] = c
			}
			return model.Intent{ID: prev.ID, Confidence: prev.Confidence, Slots: slots}
		}
	}
	return it
}

func (p *FinancePolicy) simple(key string, lang model.LanguageCode, actions []model.QuickAction) model.ChatbotResponse {
	msg, ok := p.text(key, lang, nil)
	if !ok {
		return p.errorResponse(lang)
	}
	return model.ChatbotResponse{Message: msg, Type: model.ResponseInfo, QuickActions: actions}
}

func (p *FinancePolicy) fetch(ctx context.Context, userID string, filters model.TransactionFilters) ([]model.TransactionRecord, error) {
	fctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()
	recs, err := p.source.Fetch(fctx, userID, filters)
	if err != nil {
		metrics.RecordFetchFailure("financial")
	}
	return recs, err
}

func (p *FinancePolicy) spendingSummary(ctx context.Context, userID string, it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	from, to, labelKey := periodWindow(p.clock(), it.Slot(intent.SlotPeriod))
	periodLabel, _ := p.text(labelKey, lang, nil)

	recs, err := p.fetch(ctx, userID, model.TransactionFilters{
		From:     &from,
		To:       &to,
		Category: it.Slot(intent.SlotCategory),
	})
	if err != nil {
		p.logger.Warn("financial data fetch failed", zap.Error(err))
		return p.errorResponse(lang)
	}

	total, currency := sumExpenses(recs)
	if total == 0 {
		msg, ok := p.text("finance.spending_summary_empty", lang, map[string]string{"period": periodLabel})
		if !ok {
			return p.errorResponse(lang)
		}
		return model.ChatbotResponse{Message: msg, Type: model.ResponseInfo}
	}

	msg, ok := p.text("finance.spending_summary", lang, map[string]string{
		"total":  locale.FormatCents(total, currency, lang),
		"period": periodLabel,
	})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.see_details", "Show my transactions "+periodLabel, lang),
			p.quickAction("qa.export_report", "Export my monthly report", lang),
		},
	}
}

func (p *FinancePolicy) balance(ctx context.Context, userID string, lang model.LanguageCode) model.ChatbotResponse {
	recs, err := p.fetch(ctx, userID, model.TransactionFilters{})
	if err != nil {
		p.logger.Warn("financial data fetch failed", zap.Error(err))
		return p.errorResponse(lang)
	}

	var balance int64
	currency := "EUR"
	for _, r := range recs {
		if r.Currency != "" {
			currency = r.Currency
		}
		if r.Direction == model.DirectionIncome {
			balance += r.AmountCents
		} else {
			balance -= r.AmountCents
		}
	}

	msg, ok := p.text("finance.balance", lang, map[string]string{
		"balance": locale.FormatCents(balance, currency, lang),
	})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.see_details", "Show my transactions", lang),
		},
	}
}

func (p *FinancePolicy) budgetStatus(ctx context.Context, userID string, it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	from, to, _ := periodWindow(p.clock(), it.Slot(intent.SlotPeriod))

	recs, err := p.fetch(ctx, userID, model.TransactionFilters{From: &from, To: &to})
	if err != nil {
		p.logger.Warn("financial data fetch failed", zap.Error(err))
		return p.errorResponse(lang)
	}

	spent, currency := sumExpenses(recs)

	budget := int64(defaultBudgetCents)
	if raw := it.Slot(intent.SlotAmount); raw != "" {
		if euros, err := strconv.ParseFloat(raw, 64); err == nil && euros > 0 {
			budget = centsOf(euros)
		}
	}

	msg, ok := p.text("finance.budget_status", lang, map[string]string{
		"spent":  locale.FormatCents(spent, currency, lang),
		"budget": locale.FormatCents(budget, currency, lang),
	})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.export_report", "Export my monthly report", lang),
		},
	}
}

func (p *FinancePolicy) transactions(it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	from, to, labelKey := periodWindow(p.clock(), it.Slot(intent.SlotPeriod))
	periodLabel, _ := p.text(labelKey, lang, nil)

	msg, ok := p.text("finance.transactions", lang, map[string]string{"period": periodLabel})
	if !ok {
		return p.errorResponse(lang)
	}

	link := "/app/transactions?from=" + from.Format("2006-01-02") + "&to=" + to.Format("2006-01-02")
	if c := it.Slot(intent.SlotCategory); c != "" {
		link += "&category=" + c
	}

	return model.ChatbotResponse{
		Message:    msg,
		Type:       model.ResponseAction,
		ActionLink: link,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.export_report", "Export my monthly report", lang),
		},
	}
}

func (p *FinancePolicy) exportReport(lang model.LanguageCode) model.ChatbotResponse {
	msg, ok := p.text("finance.export", lang, nil)
	if !ok {
		return p.errorResponse(lang)
	}

	actions := make([]model.QuickAction, len(p.reportTypes))
	for i, rt := range p.reportTypes {
		actions[i] = model.QuickAction{Label: rt.DisplayName, Value: "report:" + rt.ID}
	}

	return model.ChatbotResponse{
		Message:      msg,
		Type:         model.ResponseAction,
		ActionLink:   "/app/reports",
		QuickActions: actions,
	}
}

// centsOf converts a user-stated euro amount to cents. Rounding matters:
// truncation turns 512.30 into 51229 because the float sits just below the
// exact value.
func centsOf(euros float64) int64 {
	return int64(math.Round(euros * 100))
}

func sumExpenses(recs []model.TransactionRecord) (total int64, currency string) {
	currency = "EUR"
	for _, r := range recs {
		if r.Direction != model.DirectionExpense {
			continue
		}
		if r.Currency != "" {
			currency = r.Currency
		}
		total += r.AmountCents
	}
	return total, currency
}
