// Package locale holds the per-language resource catalog: user-facing
// strings and templates, synonym lists for the intent matcher, and the
// curated suggestion catalogs. The catalog is loaded once at process start
// and is read-only afterwards, so concurrent reads need no locking.
package locale

import (
	"strings"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Store resolves localized resources with an English fallback chain.
type Store struct {
	strings     map[model.LanguageCode]map[string]string
	synonyms    map[model.LanguageCode]map[string]string
	suggestions map[model.Variant]map[model.LanguageCode][]Suggestion
}

// NewStore builds a store from the static catalog.
func NewStore() *Store {
	return &Store{
		strings:     catalogStrings,
		synonyms:    catalogSynonyms,
		suggestions: catalogSuggestions,
	}
}

// Resolve returns the string for (key, lang), falling back to English when
// the localized entry is absent. A missing English entry is a configuration
// defect and surfaces as a resource-gap error.
func (s *Store) Resolve(key string, lang model.LanguageCode) (string, error) {
	if table, ok := s.strings[lang]; ok {
		if v, ok := table[key]; ok {
			return v, nil
		}
	}
	if v, ok := s.strings[model.LangEnglish][key]; ok {
		return v, nil
	}
	return "", apperr.ResourceGap(key)
}

// Render resolves a template and substitutes {name} placeholders from slots.
// Unreferenced slots are ignored; unmatched placeholders are left in place.
func (s *Store) Render(key string, lang model.LanguageCode, slots map[string]string) (string, error) {
	tmpl, err := s.Resolve(key, lang)
	if err != nil {
		return "", err
	}
	if len(slots) == 0 {
		return tmpl, nil
	}
	pairs := make([]string, 0, len(slots)*2)
	for name, value := range slots {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// Canonical maps a token to its canonical form via the language's synonym
// list, returning the token unchanged when no synonym is declared.
func (s *Store) Canonical(token string, lang model.LanguageCode) string {
	if table, ok := s.synonyms[lang]; ok {
		if c, ok := table[token]; ok {
			return c
		}
	}
	if lang != model.LangEnglish {
		if c, ok := s.synonyms[model.LangEnglish][token]; ok {
			return c
		}
	}
	return token
}

// Suggestions returns the curated example queries for a variant and
// language, falling back to English when the language has no catalog.
func (s *Store) Suggestions(variant model.Variant, lang model.LanguageCode) []Suggestion {
	byLang, ok := s.suggestions[variant]
	if !ok {
		return nil
	}
	if list, ok := byLang[lang]; ok {
		return list
	}
	return byLang[model.LangEnglish]
}
