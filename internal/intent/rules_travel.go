package intent

import (
	"strings"
	"unicode"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Travel intent IDs.
const (
	TravelGreeting    = "greeting"
	TravelPackingList = "packing-list"
	TravelDestination = "destination-info"
	TravelBudget      = "budget-inquiry"
	TravelLocalCosts  = "local-costs"
	TravelItinerary   = "itinerary-suggestion"
	TravelHelp        = "help"
)

// Destination climate classes.
const (
	ClimateCold = "cold"
	ClimateWarm = "warm"
)

// knownDestinations maps lower-cased destination names onto a climate class.
// Unlisted destinations get no class and generic packing advice.
var knownDestinations = map[string]string{
	"iceland":   ClimateCold,
	"norway":    ClimateCold,
	"finland":   ClimateCold,
	"greenland": ClimateCold,
	"alaska":    ClimateCold,
	"lapland":   ClimateCold,
	"thailand":  ClimateWarm,
	"greece":    ClimateWarm,
	"bali":      ClimateWarm,
	"mexico":    ClimateWarm,
	"morocco":   ClimateWarm,
	"spain":     ClimateWarm,
}

// DestinationClimate returns the climate class for a destination, or empty
// when the destination is not in the table.
func DestinationClimate(destination string) string {
	return knownDestinations[strings.ToLower(strings.TrimSpace(destination))]
}

// extractDestination prefers a destination named in the query over the trip
// context hint. Only table-known destinations are recognized in free text.
func extractDestination(q NormalizedQuery, ctx Context) map[string]string {
	for _, tok := range q.Tokens {
		if _, ok := knownDestinations[tok]; ok {
			return map[string]string{SlotDestination: titleCase(tok)}
		}
	}
	if ctx.Trip.Active() {
		return map[string]string{SlotDestination: ctx.Trip.Destination}
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// TravelRules is the priority-ordered rule table for the travel variant.
var TravelRules = []Rule{
	{
		Intent: TravelGreeting,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"hello"}},
		},
	},
	{
		Intent: TravelHelp,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"help"}, {"what", "can", "you"}},
			model.LangSpanish: {{"ayuda"}},
			model.LangFrench:  {{"aide"}},
			model.LangGreek:   {{"βοήθεια"}},
		},
	},
	{
		Intent: TravelPackingList,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"pack"}, {"suitcase"}},
		},
		Extract: extractDestination,
	},
	{
		Intent: TravelLocalCosts,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"expensive"}, {"cost"}, {"price"}, {"cheap"}},
		},
		Extract: extractDestination,
	},
	{
		Intent: TravelBudget,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"budget"}},
		},
		Extract: merge(extractAmount, extractDestination),
	},
	{
		Intent: TravelItinerary,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"itinerary"}, {"plan"}},
		},
		Extract: extractDestination,
	},
	{
		Intent: TravelDestination,
		Keywords: map[model.LanguageCode][][]string{
			model.LangEnglish: {{"destination"}, {"tell", "about"}, {"visit"}},
		},
		Extract: extractDestination,
	},
}
