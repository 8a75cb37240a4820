package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/dialogue"
	"github.com/fintrip-ai/assistant-platform/internal/intent"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/report"
	"github.com/fintrip-ai/assistant-platform/internal/service"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

func newTestRouter() chi.Router {
	store := locale.NewStore()
	log := logger.NewNop()
	clock := func() time.Time { return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC) }

	financialSource := data.NewMemoryFinancialSource()
	financialSource.Seed("", []model.TransactionRecord{
		{ID: "t1", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Category: "groceries", Description: "Supermarket", AmountCents: 10000, Currency: "EUR", Direction: model.DirectionExpense},
	})
	tripSource := data.NewMemoryTripSource()

	suggester := dialogue.NewSuggester(store)
	finance := dialogue.NewFinancePolicy(
		store, suggester,
		intent.NewMatcher(store, intent.FinanceRules),
		financialSource,
		report.ListReportTypes(),
		log, clock, time.Second)
	travel := dialogue.NewTravelPolicy(
		store, suggester,
		intent.NewMatcher(store, intent.TravelRules),
		tripSource, log, time.Second)

	assistantSvc := service.NewAssistantService(finance, travel, suggester, tripSource, nil, log, clock)
	reportSvc := service.NewReportService(report.NewBuilder(financialSource, clock, time.Second), nil, log)

	assistantHandler := NewAssistantHandler(assistantSvc, log)
	reportHandler := NewReportHandler(reportSvc, log)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assistant/{variant}", func(r chi.Router) {
			r.Post("/query", assistantHandler.Query)
			r.Get("/suggestions", assistantHandler.Suggestions)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/types", reportHandler.ListTypes)
			r.Post("/generate", reportHandler.Generate)
		})
	})
	return r
}

func TestAssistantHandler_Query(t *testing.T) {
	router := newTestRouter()

	body := strings.NewReader(`{"text":"How much did I spend last month?","language":"en"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/finance/query", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ChatbotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ResponseInfo, resp.Type)
	assert.Equal(t, "You spent €100.00 last month.", resp.Message)
}

func TestAssistantHandler_Query_Invalid(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"empty text", "/api/v1/assistant/finance/query", `{"text":"  "}`},
		{"unknown variant", "/api/v1/assistant/legal/query", `{"text":"hello"}`},
		{"malformed body", "/api/v1/assistant/finance/query", `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestAssistantHandler_Suggestions(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/travel/suggestions?language=es", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "¿Qué debería llevar en la maleta?", resp.Suggestions[0])
}

func TestReportHandler_ListTypes(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/types", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ReportTypes []model.ReportTypeDescriptor `json:"report_types"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ReportTypes, 4)
}

func TestReportHandler_Generate(t *testing.T) {
	router := newTestRouter()

	body := strings.NewReader(`{"report_type":"spending-by-category","format":"csv"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="spending-by-category_20250315.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Category,Total,Share")
}

func TestReportHandler_Generate_Invalid(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"unknown format", `{"report_type":"spending-by-category","format":"xlsx"}`},
		{"unknown report type", `{"report_type":"quarterly-forecast","format":"csv"}`},
		{"inverted date range", `{"report_type":"monthly-summary","format":"csv","from":"2025-03-01T00:00:00Z","to":"2025-02-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
