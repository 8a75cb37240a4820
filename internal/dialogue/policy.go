// Package dialogue implements the dialogue policies for both chatbot
// variants plus the suggestion generator. Policies are pure given their
// inputs and the injected data sources: the same query, history, language
// and context always produce the same response.
package dialogue

import (
	"time"

	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

// historyLookback bounds how many trailing turns disambiguate follow-ups.
// The bound keeps the policy a pure, testable function; do not widen it to
// full-transcript reasoning.
const historyLookback = 3

// genericErrorFallback is used only when even the English error string is
// missing from the catalog.
const genericErrorFallback = "Something went wrong. Please try again."

// responder holds the pieces shared by both policy variants.
type responder struct {
	store     *locale.Store
	suggester *Suggester
	logger    *logger.Logger
}

// text resolves and renders a template. A resource gap is a configuration
// defect: it is logged and reported as not-ok so callers degrade to the
// generic error response, never exposing internal detail.
func (r *responder) text(key string, lang model.LanguageCode, slots map[string]string) (string, bool) {
	s, err := r.store.Render(key, lang, slots)
	if err != nil {
		r.logger.Error("locale resource missing", zap.String("key", key), zap.String("language", string(lang)))
		return "", false
	}
	return s, true
}

// errorResponse builds the generic localized failure response.
func (r *responder) errorResponse(lang model.LanguageCode) model.ChatbotResponse {
	msg, ok := r.text("error.generic", lang, nil)
	if !ok {
		msg = genericErrorFallback
	}
	return model.ChatbotResponse{Message: msg, Type: model.ResponseError}
}

// unknownResponse answers an unmatched query with the full suggestion list
// as quick actions so the user is never left at a dead end.
func (r *responder) unknownResponse(variant model.Variant, lang model.LanguageCode, trip *model.TripContext) model.ChatbotResponse {
	msg, ok := r.text("unknown", lang, nil)
	if !ok {
		return r.errorResponse(lang)
	}

	suggestions := r.suggester.Suggest(variant, lang, trip)
	actions := make([]model.QuickAction, len(suggestions))
	for i, s := range suggestions {
		actions[i] = model.QuickAction{Label: s, Value: s}
	}

	return model.ChatbotResponse{
		Message:      msg,
		Type:         model.ResponseInfo,
		QuickActions: actions,
	}
}

// quickAction builds a quick action with a localized label.
func (r *responder) quickAction(labelKey, value string, lang model.LanguageCode) model.QuickAction {
	label, ok := r.text(labelKey, lang, nil)
	if !ok {
		label = value
	}
	return model.QuickAction{Label: label, Value: value}
}

// periodWindow converts a period slot value into a concrete [from, to]
// range anchored at now, plus the locale key for the period's display name.
func periodWindow(now time.Time, period string) (from, to time.Time, labelKey string) {
	switch period {
	case "last-month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return first, first.AddDate(0, 1, 0).Add(-time.Nanosecond), "period.last_month"
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return start, now, "period.today"
	default:
		// Sensible default when the period slot is absent.
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, now, "period.this_month"
	}
}
