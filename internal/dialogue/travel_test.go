package dialogue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/intent"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

func newTravelPolicy(trips data.TripDataSource) *TravelPolicy {
	store := locale.NewStore()
	return NewTravelPolicy(
		store,
		NewSuggester(store),
		intent.NewMatcher(store, intent.TravelRules),
		trips,
		logger.NewNop(),
		time.Second,
	)
}

func TestTravelPolicy_PackingList(t *testing.T) {
	p := newTravelPolicy(data.NewMemoryTripSource())

	tests := []struct {
		name        string
		text        string
		trip        *model.TripContext
		wantType    model.ResponseType
		wantContain string
	}{
		{
			name:        "cold destination",
			text:        "What should I pack for Iceland?",
			wantType:    model.ResponseInfo,
			wantContain: "thermal",
		},
		{
			name:        "warm destination",
			text:        "What should I pack for Thailand?",
			wantType:    model.ResponseInfo,
			wantContain: "sunscreen",
		},
		{
			name:        "unlisted destination gets generic advice",
			text:        "What should I pack for Japan?",
			trip:        &model.TripContext{Destination: "Japan"},
			wantType:    model.ResponseInfo,
			wantContain: "versatile layers",
		},
		{
			name:        "missing destination asks back",
			text:        "What should I pack?",
			wantType:    model.ResponseWarning,
			wantContain: "Where are you travelling to?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, it := p.Respond(context.Background(), "u1", model.Query{
				Text:        tt.text,
				Language:    model.LangEnglish,
				TripContext: tt.trip,
			})
			assert.Equal(t, intent.TravelPackingList, it.ID)
			assert.Equal(t, tt.wantType, resp.Type)
			assert.Contains(t, resp.Message, tt.wantContain)
		})
	}
}

func TestTravelPolicy_TripContextFetchedWhenAbsent(t *testing.T) {
	trips := data.NewMemoryTripSource()
	trips.Seed("u1", &model.TripContext{Destination: "Iceland"})
	p := newTravelPolicy(trips)

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "What should I bring?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.TravelPackingList, it.ID)
	assert.Equal(t, "Iceland", it.Slot(intent.SlotDestination))
	assert.Contains(t, resp.Message, "waterproof jacket")
}

func TestTravelPolicy_TripBudget(t *testing.T) {
	p := newTravelPolicy(data.NewMemoryTripSource())

	t.Run("known budget", func(t *testing.T) {
		resp, it := p.Respond(context.Background(), "u1", model.Query{
			Text:        "What's my trip budget?",
			Language:    model.LangEnglish,
			TripContext: &model.TripContext{Destination: "Greece", BudgetCents: 120000, BudgetCurr: "EUR"},
		})
		assert.Equal(t, intent.TravelBudget, it.ID)
		assert.Equal(t, "Your trip budget is €1,200.00.", resp.Message)
	})

	t.Run("no budget asks back", func(t *testing.T) {
		resp, _ := p.Respond(context.Background(), "u1", model.Query{
			Text:     "What's my trip budget?",
			Language: model.LangEnglish,
		})
		assert.Equal(t, model.ResponseWarning, resp.Type)
		assert.Contains(t, resp.Message, "haven't set a trip budget")
	})

	t.Run("budget stated in the query", func(t *testing.T) {
		resp, it := p.Respond(context.Background(), "u1", model.Query{
			Text:     "My trip budget is 2000",
			Language: model.LangEnglish,
		})
		assert.Equal(t, intent.TravelBudget, it.ID)
		assert.Equal(t, model.ResponseInfo, resp.Type)
		assert.Equal(t, "Your trip budget is €2,000.00.", resp.Message)
	})

	t.Run("stated budget overrides stored trip budget", func(t *testing.T) {
		resp, _ := p.Respond(context.Background(), "u1", model.Query{
			Text:        "Is 500.10 enough for my trip budget?",
			Language:    model.LangEnglish,
			TripContext: &model.TripContext{Destination: "Greece", BudgetCents: 120000, BudgetCurr: "EUR"},
		})
		assert.Equal(t, "Your trip budget is €500.10.", resp.Message)
	})
}

func TestTravelPolicy_LocalCosts(t *testing.T) {
	p := newTravelPolicy(data.NewMemoryTripSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:     "How expensive is Thailand?",
		Language: model.LangEnglish,
	})

	assert.Equal(t, intent.TravelLocalCosts, it.ID)
	assert.Equal(t, "In Thailand, plan for roughly €45.00 per day for food and local transport.", resp.Message)
}

func TestTravelPolicy_SpanishPacking(t *testing.T) {
	p := newTravelPolicy(data.NewMemoryTripSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:        "¿Qué debería llevar en la maleta?",
		Language:    model.LangSpanish,
		TripContext: &model.TripContext{Destination: "Iceland"},
	})

	require.Equal(t, intent.TravelPackingList, it.ID)
	assert.Contains(t, resp.Message, "ropa térmica")
}

func TestTravelPolicy_UnknownOffersTripFirstSuggestions(t *testing.T) {
	p := newTravelPolicy(data.NewMemoryTripSource())

	resp, it := p.Respond(context.Background(), "u1", model.Query{
		Text:        "Do you like trains?",
		Language:    model.LangEnglish,
		TripContext: &model.TripContext{Destination: "Greece"},
	})

	assert.Equal(t, model.IntentUnknown, it.ID)
	require.NotEmpty(t, resp.QuickActions)
	assert.Equal(t, "What should I pack?", resp.QuickActions[0].Label)
}
