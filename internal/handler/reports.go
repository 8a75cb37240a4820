package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/middleware"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/service"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	service *service.ReportService
	logger  *logger.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: svc,
		logger:  log,
	}
}

// ListTypes handles GET /api/v1/reports/types
func (h *ReportHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report_types": h.service.ListReportTypes(),
	})
}

// Generate handles POST /api/v1/reports/generate
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req model.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Language = model.NormalizeLanguage(string(req.Language))

	generated, err := h.service.GenerateReport(ctx, userID, req)
	if err != nil {
		h.logger.Error("failed to generate report",
			zap.String("report_type", req.ReportType),
			zap.String("format", string(req.Format)),
			zap.Error(err))
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", generated.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+generated.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(generated.Data)
}
