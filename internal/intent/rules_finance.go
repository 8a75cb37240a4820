package intent

import (
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Finance intent IDs. The catalog is closed; matching never invents new IDs.
const (
	FinanceGreeting        = "greeting"
	FinanceSpendingSummary = "spending-summary"
	FinanceBalanceInquiry  = "balance-inquiry"
	FinanceBudgetStatus    = "budget-status"
	FinanceTransactions    = "transactions-list"
	FinanceExportReport    = "export-report"
	FinanceSavingsAdvice   = "savings-advice"
	FinanceHelp            = "help"
)

// FinanceRules is the priority-ordered rule table for the finance variant.
// Declaration order is part of the contract: the first matching rule wins.
var FinanceRules = []Rule{
	{
		Intent: FinanceGreeting,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"hello"}, {"good", "morning"}, {"good", "evening"}},
		},
	},
	{
		Intent: FinanceHelp,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"help"}, {"what", "can", "you"}},
			model.LangSpanish: {{"ayuda"}, {"qué", "puedes"}},
			model.LangFrench:  {{"aide"}},
			model.LangGreek:   {{"βοήθεια"}},
		},
	},
	{
		Intent: FinanceExportReport,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"export"}, {"report"}, {"download"}},
		},
	},
	{
		Intent: FinanceTransactions,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"transaction"}},
		},
		Extract: merge(extractPeriod, extractCategory),
	},
	{
		Intent: FinanceBalanceInquiry,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"balance"}},
		},
	},
	{
		Intent: FinanceBudgetStatus,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"budget"}},
		},
		Extract: merge(extractPeriod, extractAmount),
	},
	{
		Intent: FinanceSpendingSummary,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"spend"}, {"how", "much"}},
		},
		Extract: merge(extractPeriod, extractCategory),
	},
	{
		Intent: FinanceSavingsAdvice,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"save"}, {"saving"}},
		},
	},
}
