// Package intent maps normalized query text onto a closed per-variant
// catalog of intents using priority-ordered keyword rules. Matching is a
// pure function: no I/O, no randomness, declaration order breaks ties.
package intent

import (
	"strings"
	"unicode"

	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Context carries optional structured hints into slot extraction.
type Context struct {
	Trip *model.TripContext
}

// NormalizedQuery is the matcher's view of one query text.
type NormalizedQuery struct {
	// Raw is the original text, used for locale-aware number extraction.
	Raw string
	// Text is the lower-cased, punctuation-trimmed, synonym-canonicalized
	// form used for phrase containment.
	Text string
	// Tokens are the canonical tokens of Text.
	Tokens []string

	tokenSet map[string]struct{}
	lang     model.LanguageCode
}

// Has reports whether the canonical token is present.
func (q NormalizedQuery) Has(token string) bool {
	_, ok := q.tokenSet[token]
	return ok
}

// Contains reports whether the normalized text contains the phrase.
func (q NormalizedQuery) Contains(phrase string) bool {
	return strings.Contains(q.Text, phrase)
}

// SlotExtractor pulls named values out of a normalized query. Extraction
// failure never fails the match; extractors return nil or a partial map.
type SlotExtractor func(q NormalizedQuery, ctx Context) map[string]string

// Rule is one priority-ordered matching rule. A keyword group matches when
// every entry is present: single words by token containment, multi-word
// entries by substring containment. The rule matches when any group for the
// query's language matches; languages without groups fall back to English.
type Rule struct {
	Intent   string
	Keywords map[model.LanguageCode][][]string
	Extract  SlotExtractor
}

// Matcher evaluates an ordered rule table against queries.
type Matcher struct {
	store *locale.Store
	rules []Rule
}

// NewMatcher creates a matcher over the given rule table.
func NewMatcher(store *locale.Store, rules []Rule) *Matcher {
	return &Matcher{store: store, rules: rules}
}

// Normalize lower-cases the text, splits it into tokens on punctuation and
// whitespace, and canonicalizes each token through the language's synonym
// list.
func (m *Matcher) Normalize(text string, lang model.LanguageCode) NormalizedQuery {
	lowered := strings.ToLower(strings.TrimSpace(text))
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, len(fields))
	set := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		c := m.store.Canonical(f, lang)
		tokens[i] = c
		set[c] = struct{}{}
	}

	return NormalizedQuery{
		Raw:      text,
		Text:     strings.Join(tokens, " "),
		Tokens:   tokens,
		tokenSet: set,
		lang:     lang,
	}
}

// Match returns the first rule whose pattern set matches, in declaration
// order, or the unknown sentinel with confidence zero. Confidence is an
// ordinal rank: earlier rules rank higher.
func (m *Matcher) Match(text string, lang model.LanguageCode, ctx Context) model.Intent {
	q := m.Normalize(text, lang)

	for i, rule := range m.rules {
		if !ruleMatches(rule, q, lang) {
			continue
		}
		var slots map[string]string
		if rule.Extract != nil {
			slots = rule.Extract(q, ctx)
		}
		return model.Intent{
			ID:         rule.Intent,
			Confidence: len(m.rules) - i,
			Slots:      slots,
		}
	}

	// Period phrases on an otherwise unmatched query are kept so the
	// dialogue policy can re-bind bare follow-ups like "and for last month?".
	return model.Intent{
		ID:         model.IntentUnknown,
		Confidence: 0,
		Slots:      extractPeriod(q, ctx),
	}
}

func ruleMatches(rule Rule, q NormalizedQuery, lang model.LanguageCode) bool {
	groups, ok := rule.Keywords[lang]
	if !ok {
		groups = rule.Keywords[model.LangEnglish]
	}
	for _, group := range groups {
		if groupMatches(group, q) {
			return true
		}
	}
	return false
}

func groupMatches(group []string, q NormalizedQuery) bool {
	for _, kw := range group {
		if strings.ContainsRune(kw, ' ') {
			if !q.Contains(kw) {
				return false
			}
		} else if !q.Has(kw) {
			return false
		}
	}
	return len(group) > 0
}
