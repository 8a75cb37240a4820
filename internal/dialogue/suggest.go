package dialogue

import (
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// maxSuggestions bounds the suggestion list length.
const maxSuggestions = 6

// Suggester produces language- and context-appropriate example queries.
type Suggester struct {
	store *locale.Store
}

// NewSuggester creates a suggestion generator over the locale catalog.
func NewSuggester(store *locale.Store) *Suggester {
	return &Suggester{store: store}
}

// Suggest returns the curated example queries for a variant. When an active
// trip is known, trip-relevant travel suggestions are surfaced first; the
// reorder is a stable partition, so ties keep catalog order.
func (s *Suggester) Suggest(variant model.Variant, lang model.LanguageCode, trip *model.TripContext) []string {
	catalog := s.store.Suggestions(variant, lang)

	ordered := make([]locale.Suggestion, 0, len(catalog))
	if variant == model.VariantTravel && trip.Active() {
		for _, sg := range catalog {
			if sg.TripRelevant {
				ordered = append(ordered, sg)
			}
		}
		for _, sg := range catalog {
			if !sg.TripRelevant {
				ordered = append(ordered, sg)
			}
		}
	} else {
		ordered = append(ordered, catalog...)
	}

	if len(ordered) > maxSuggestions {
		ordered = ordered[:maxSuggestions]
	}

	out := make([]string, len(ordered))
	for i, sg := range ordered {
		out[i] = sg.Text
	}
	return out
}
