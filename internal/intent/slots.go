package intent

import (
	"regexp"
	"strings"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Slot names shared with the dialogue policy.
const (
	SlotPeriod      = "period"
	SlotAmount      = "amount"
	SlotCategory    = "category"
	SlotDestination = "destination"
)

// Period slot values.
const (
	PeriodThisMonth = "this-month"
	PeriodLastMonth = "last-month"
	PeriodToday     = "today"
)

type periodPhrase struct {
	phrase string
	value  string
}

// Ordered: more specific phrases first.
var periodPhrases = map[model.LanguageCode][]periodPhrase{
	model.LangEnglish: {
		{"last month", PeriodLastMonth},
		{"this month", PeriodThisMonth},
		{"today", PeriodToday},
	},
	model.LangSpanish: {
		{"mes pasado", PeriodLastMonth},
		{"este mes", PeriodThisMonth},
		{"hoy", PeriodToday},
	},
	model.LangFrench: {
		{"mois dernier", PeriodLastMonth},
		{"ce mois", PeriodThisMonth},
		{"aujourd", PeriodToday},
	},
	model.LangGreek: {
		{"περασμένο μήνα", PeriodLastMonth},
		{"αυτόν τον μήνα", PeriodThisMonth},
		{"σήμερα", PeriodToday},
	},
}

func extractPeriod(q NormalizedQuery, _ Context) map[string]string {
	phrases, ok := periodPhrases[q.lang]
	if !ok {
		phrases = periodPhrases[model.LangEnglish]
	}
	for _, p := range phrases {
		if q.Contains(p.phrase) {
			return map[string]string{SlotPeriod: p.value}
		}
	}
	if q.lang != model.LangEnglish {
		for _, p := range periodPhrases[model.LangEnglish] {
			if q.Contains(p.phrase) {
				return map[string]string{SlotPeriod: p.value}
			}
		}
	}
	return nil
}

// amountPattern accepts both dot and comma decimal marks.
var amountPattern = regexp.MustCompile(`\d+(?:[.,]\d{1,2})?`)

func extractAmount(q NormalizedQuery, _ Context) map[string]string {
	m := amountPattern.FindString(q.Raw)
	if m == "" {
		return nil
	}
	return map[string]string{SlotAmount: strings.ReplaceAll(m, ",", ".")}
}

// Localized category names mapped onto the canonical catalog used by the
// financial data source.
var categoryNames = map[model.LanguageCode]map[string]string{
	model.LangEnglish: {
		"groceries":     "groceries",
		"food":          "food",
		"rent":          "rent",
		"transport":     "transport",
		"entertainment": "entertainment",
		"utilities":     "utilities",
		"travel":        "travel",
	},
	model.LangSpanish: {
		"comida":     "food",
		"alquiler":   "rent",
		"transporte": "transport",
		"ocio":       "entertainment",
		"viajes":     "travel",
	},
	model.LangFrench: {
		"courses":   "groceries",
		"loyer":     "rent",
		"transport": "transport",
		"loisirs":   "entertainment",
		"voyages":   "travel",
	},
	model.LangGreek: {
		"φαγητό":    "food",
		"ενοίκιο":   "rent",
		"μεταφορές": "transport",
	},
}

func extractCategory(q NormalizedQuery, _ Context) map[string]string {
	names, ok := categoryNames[q.lang]
	if !ok {
		names = categoryNames[model.LangEnglish]
	}
	for _, tok := range q.Tokens {
		if canonical, ok := names[tok]; ok {
			return map[string]string{SlotCategory: canonical}
		}
	}
	if q.lang != model.LangEnglish {
		for _, tok := range q.Tokens {
			if canonical, ok := categoryNames[model.LangEnglish][tok]; ok {
				return map[string]string{SlotCategory: canonical}
			}
		}
	}
	return nil
}

// merge combines extractor outputs; later maps win on key collisions.
func merge(extractors ...SlotExtractor) SlotExtractor {
	return func(q NormalizedQuery, ctx Context) map[string]string {
		var out map[string]string
		for _, ex := range extractors {
			for k, v := range ex(q, ctx) {
				if out == nil {
					out = make(map[string]string)
				}
				out[k] = v
			}
		}
		return out
	}
}
