// Package service provides the operations exposed to the API layer.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/dialogue"
	"github.com/fintrip-ai/assistant-platform/internal/events"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
	"github.com/fintrip-ai/assistant-platform/pkg/metrics"
)

// AssistantService routes queries to the variant's dialogue policy.
type AssistantService struct {
	finance   *dialogue.FinancePolicy
	travel    *dialogue.TravelPolicy
	suggester *dialogue.Suggester
	trips     data.TripDataSource
	publisher *events.Publisher
	logger    *logger.Logger
	clock     func() time.Time
}

// NewAssistantService creates the assistant service.
func NewAssistantService(
	finance *dialogue.FinancePolicy,
	travel *dialogue.TravelPolicy,
	suggester *dialogue.Suggester,
	trips data.TripDataSource,
	publisher *events.Publisher,
	log *logger.Logger,
	clock func() time.Time,
) *AssistantService {
	return &AssistantService{
		finance:   finance,
		travel:    travel,
		suggester: suggester,
		trips:     trips,
		publisher: publisher,
		logger:    log,
		clock:     clock,
	}
}

// ProcessQuery runs one query through the variant's policy. Blank text is
// rejected before entering the engine; every other failure mode is already
// converted to a well-formed response by the policy layer.
func (s *AssistantService) ProcessQuery(ctx context.Context, userID string, variant model.Variant, q model.Query) (model.ChatbotResponse, error) {
	if strings.TrimSpace(q.Text) == "" {
		return model.ChatbotResponse{}, apperr.Validation(apperr.CodeEmptyQuery, "query text must not be empty")
	}

	var (
		resp model.ChatbotResponse
		it   model.Intent
	)
	switch variant {
	case model.VariantFinance:
		resp, it = s.finance.Respond(ctx, userID, q)
	case model.VariantTravel:
		resp, it = s.travel.Respond(ctx, userID, q)
	default:
		return model.ChatbotResponse{}, apperr.Validation(apperr.CodeUnknownVariant, "unknown assistant variant "+string(variant))
	}

	metrics.RecordQuery(string(variant), it.ID, string(resp.Type))

	s.publisher.PublishQuery(ctx, events.QueryEvent{
		UserID:       userID,
		Variant:      variant,
		Language:     model.NormalizeLanguage(string(q.Language)),
		IntentID:     it.ID,
		ResponseType: resp.Type,
		CreatedAt:    s.clock().UTC(),
	})

	return resp, nil
}

// GetSuggestions returns the example queries for a variant. For the travel
// variant a known trip reorders the list; a trip fetch failure only loses
// the reorder.
func (s *AssistantService) GetSuggestions(ctx context.Context, userID string, variant model.Variant, lang model.LanguageCode) ([]string, error) {
	if variant != model.VariantFinance && variant != model.VariantTravel {
		return nil, apperr.Validation(apperr.CodeUnknownVariant, "unknown assistant variant "+string(variant))
	}

	lang = model.NormalizeLanguage(string(lang))

	var trip *model.TripContext
	if variant == model.VariantTravel && s.trips != nil {
		fetched, err := s.trips.Fetch(ctx, userID)
		if err != nil {
			metrics.RecordFetchFailure("trip")
			s.logger.Warn("trip data fetch failed", zap.Error(err))
		} else {
			trip = fetched
		}
	}

	return s.suggester.Suggest(variant, lang, trip), nil
}
