// Package model defines data structures for the assistant platform.
package model

import (
	"time"
)

// Role represents the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Variant selects one of the two chatbot rule catalogs.
type Variant string

const (
	VariantFinance Variant = "finance"
	VariantTravel  Variant = "travel"
)

// LanguageCode is one of the supported interface languages.
type LanguageCode string

const (
	LangEnglish LanguageCode = "en"
	LangGreek   LanguageCode = "el"
	LangSpanish LanguageCode = "es"
	LangFrench  LanguageCode = "fr"
)

// SupportedLanguages lists every language with at least partial coverage.
var SupportedLanguages = []LanguageCode{LangEnglish, LangGreek, LangSpanish, LangFrench}

// NormalizeLanguage maps unknown or empty codes to English.
func NormalizeLanguage(code string) LanguageCode {
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l
		}
	}
	return LangEnglish
}

// Turn is a single prior message in the conversation, immutable once created.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// TripContext carries optional structured hints for the travel variant.
// Every field may be empty; absence only reduces slot specificity.
type TripContext struct {
	Destination  string     `json:"destination,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	BudgetCents  int64      `json:"budget_cents,omitempty"`
	BudgetCurr   string     `json:"budget_currency,omitempty"`
	TravelerName string     `json:"traveler_name,omitempty"`
}

// Active reports whether the context describes a concrete upcoming trip.
func (t *TripContext) Active() bool {
	return t != nil && t.Destination != ""
}

// Query is one chatbot request. Text is validated non-empty at the boundary;
// History is caller-supplied, ordered oldest to newest, and may be empty.
type Query struct {
	Text        string       `json:"text"`
	History     []Turn       `json:"history,omitempty"`
	Language    LanguageCode `json:"language"`
	TripContext *TripContext `json:"trip_context,omitempty"`
}

// ResponseType classifies a chatbot response.
type ResponseType string

const (
	ResponseInfo    ResponseType = "info"
	ResponseWarning ResponseType = "warning"
	ResponseAction  ResponseType = "action"
	ResponseError   ResponseType = "error"
)

// QuickAction is a caller-actionable suggestion; Value is opaque to the
// engine and interpreted by the caller as a follow-up query or app route.
type QuickAction struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChatbotResponse is the engine's answer to one Query.
// Type == ResponseAction implies QuickActions is non-empty or ActionLink is set.
type ChatbotResponse struct {
	Message      string        `json:"message"`
	Type         ResponseType  `json:"type"`
	QuickActions []QuickAction `json:"quick_actions,omitempty"`
	ActionLink   string        `json:"action_link,omitempty"`
}

// Intent is a matched user goal with extracted slots. IDs come from a closed
// per-variant catalog; matching never invents new ones.
type Intent struct {
	ID         string            `json:"id"`
	Confidence int               `json:"confidence"`
	Slots      map[string]string `json:"slots,omitempty"`
}

// IntentUnknown is the sentinel returned when no rule matches.
const IntentUnknown = "unknown"

// Slot returns the named slot value, or empty when absent.
func (i *Intent) Slot(name string) string {
	if i.Slots == nil {
		return ""
	}
	return i.Slots[name]
}
