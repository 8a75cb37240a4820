package dialogue

import (
	"context"
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

// Rough daily cost estimates per climate class, in cents.
const (
	dailyCostColdCents    = 9000
	dailyCostWarmCents    = 4500
	dailyCostDefaultCents = 6500
)

// TravelPolicy answers travel-variant queries.
type TravelPolicy struct {
	responder
	matcher      *intent.Matcher
	trips        data.TripDataSource
	fetchTimeout time.Duration
}

// NewTravelPolicy wires the travel policy set.
func NewTravelPolicy(
	store *locale.Store,
	suggester *Suggester,
	matcher *intent.Matcher,
	trips data.TripDataSource,
	log *logger.Logger,
	fetchTimeout time.Duration,
) *TravelPolicy {
	return &TravelPolicy{
		responder:    responder{store: store, suggester: suggester, logger: log},
		matcher:      matcher,
		trips:        trips,
		fetchTimeout: fetchTimeout,
	}
}

// Respond classifies the query and builds the response. When the caller
// supplies no trip context the trip data source is consulted; its failure
// only reduces slot specificity and is never surfaced as an error.
func (p *TravelPolicy) Respond(ctx context.Context, userID string, q model.Query) (model.ChatbotResponse, model.Intent) {
	lang := model.NormalizeLanguage(string(q.Language))

	trip := q.TripContext
	if trip == nil && p.trips != nil {
		fctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		fetched, err := p.trips.Fetch(fctx, userID)
		cancel()
		if err != nil {
			metrics.RecordFetchFailure("trip")
			p.logger.Warn("trip data fetch failed", zap.Error(err))
		} else {
			trip = fetched
		}
	}

	it := p.matcher.Match(q.Text, lang, intent.Context{Trip: trip})

	switch it.ID {
	case intent.TravelGreeting:
		return p.simple("greeting", lang, []model.QuickAction{
			p.quickAction("qa.packing_list", "What should I pack?", lang),
			p.quickAction("qa.local_costs", "How expensive is eating out?", lang),
		}), it
	case intent.TravelHelp:
		return p.simple("help.travel", lang, nil), it
	case intent.TravelPackingList:
		return p.packingList(it, lang), it
	case intent.TravelDestination:
		return p.destinationInfo(it, lang), it
	case intent.TravelBudget:
		return p.tripBudget(trip, it, lang), it
	case intent.TravelLocalCosts:
		return p.localCosts(it, lang), it
	case intent.TravelItinerary:
		return p.itinerary(it, lang), it
	default:
		return p.unknownResponse(model.VariantTravel, lang, trip), it
	}
}

func (p *TravelPolicy) simple(key string, lang model.LanguageCode, actions []model.QuickAction) model.ChatbotResponse {
	msg, ok := p.text(key, lang, nil)
	if !ok {
		return p.errorResponse(lang)
	}
	return model.ChatbotResponse{Message: msg, Type: model.ResponseInfo, QuickActions: actions}
}

// ask returns a clarifying warning when a required slot is missing.
func (p *TravelPolicy) ask(key string, lang model.LanguageCode) model.ChatbotResponse {
	msg, ok := p.text(key, lang, nil)
	if !ok {
		return p.errorResponse(lang)
	}
	return model.ChatbotResponse{Message: msg, Type: model.ResponseWarning}
}

func (p *TravelPolicy) packingList(it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	dest := it.Slot(intent.SlotDestination)
	if dest == "" {
		return p.ask("travel.packing.ask", lang)
	}

	key := "travel.packing.generic"
	switch intent.DestinationClimate(dest) {
	case intent.ClimateCold:
		key = "travel.packing.cold"
	case intent.ClimateWarm:
		key = "travel.packing.warm"
	}

	msg, ok := p.text(key, lang, map[string]string{"destination": dest})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.local_costs", "How expensive is eating out?", lang),
			p.quickAction("qa.itinerary", "Plan a three day itinerary", lang),
		},
	}
}

func (p *TravelPolicy) destinationInfo(it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	dest := it.Slot(intent.SlotDestination)
	if dest == "" {
		return p.ask("travel.destination.ask", lang)
	}

	msg, ok := p.text("travel.destination", lang, map[string]string{"destination": dest})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.packing_list", "What should I pack?", lang),
			p.quickAction("qa.local_costs", "How expensive is eating out?", lang),
		},
	}
}

func (p *TravelPolicy) tripBudget(trip *model.TripContext, it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	var budget int64
	currency := "EUR"
	if trip != nil && trip.BudgetCents > 0 {
		budget = trip.BudgetCents
		if trip.BudgetCurr != "" {
			currency = trip.BudgetCurr
		}
	}

	// A budget stated in the query wins over the stored trip budget.
	if raw := it.Slot(intent.SlotAmount); raw != "" {
		if euros, err := strconv.ParseFloat(raw, 64); err == nil && euros > 0 {
			budget = centsOf(euros)
		}
	}

	if budget == 0 {
		return p.ask("travel.budget.ask", lang)
	}

	msg, ok := p.text("travel.budget", lang, map[string]string{
		"budget": locale.FormatCents(budget, currency, lang),
	})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.local_costs", "How expensive is eating out?", lang),
		},
	}
}

func (p *TravelPolicy) localCosts(it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	dest := it.Slot(intent.SlotDestination)
	if dest == "" {
		return p.ask("travel.local_costs.ask", lang)
	}

	daily := int64(dailyCostDefaultCents)
	switch intent.DestinationClimate(dest) {
	case intent.ClimateCold:
		daily = dailyCostColdCents
	case intent.ClimateWarm:
		daily = dailyCostWarmCents
	}

	msg, ok := p.text("travel.local_costs", lang, map[string]string{
		"destination": dest,
		"daily":       locale.FormatCents(daily, "EUR", lang),
	})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.trip_budget", "What's my trip budget?", lang),
		},
	}
}

func (p *TravelPolicy) itinerary(it model.Intent, lang model.LanguageCode) model.ChatbotResponse {
	dest := it.Slot(intent.SlotDestination)
	if dest == "" {
		return p.ask("travel.itinerary.ask", lang)
	}

	msg, ok := p.text("travel.itinerary", lang, map[string]string{"destination": dest})
	if !ok {
		return p.errorResponse(lang)
	}

	return model.ChatbotResponse{
		Message: msg,
		Type:    model.ResponseInfo,
		QuickActions: []model.QuickAction{
			p.quickAction("qa.packing_list", "What should I pack?", lang),
		},
	}
}
