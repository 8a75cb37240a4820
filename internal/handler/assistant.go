// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/middleware"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/service"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

// AssistantHandler handles chatbot endpoints.
type AssistantHandler struct {
	service *service.AssistantService
	logger  *logger.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(svc *service.AssistantService, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: svc,
		logger:  log,
	}
}

// Query handles POST /api/v1/assistant/{variant}/query
func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	variant := chi.URLParam(r, "variant")

	if err := middleware.ValidateVariant(variant); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var q model.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateQueryText(q.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateHistoryLength(len(q.History)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.ProcessQuery(ctx, userID, model.Variant(variant), q)
	if err != nil {
		h.logger.Error("failed to process query", zap.Error(err))
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Suggestions handles GET /api/v1/assistant/{variant}/suggestions
func (h *AssistantHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	variant := chi.URLParam(r, "variant")

	if err := middleware.ValidateVariant(variant); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lang := model.NormalizeLanguage(r.URL.Query().Get("language"))

	suggestions, err := h.service.GetSuggestions(ctx, userID, model.Variant(variant), lang)
	if err != nil {
		h.logger.Error("failed to get suggestions", zap.Error(err))
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}
