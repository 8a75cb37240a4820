package service

import (
	"context"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
	"github.com/fintrip-ai/assistant-platform/internal/events"
	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/internal/report"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
	"github.com/fintrip-ai/assistant-platform/pkg/metrics"
)

// GeneratedReport is a rendered report ready for download.
type GeneratedReport struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ReportService builds and renders reports.
type ReportService struct {
	builder   *report.Builder
	publisher *events.Publisher
	logger    *logger.Logger
}

// NewReportService creates the report service.
func NewReportService(builder *report.Builder, publisher *events.Publisher, log *logger.Logger) *ReportService {
	return &ReportService{builder: builder, publisher: publisher, logger: log}
}

// GenerateReport builds the report model and renders it in the requested
// format. Validation failures surface before any data is fetched.
func (s *ReportService) GenerateReport(ctx context.Context, userID string, req model.ReportRequest) (*GeneratedReport, error) {
	if req.Format != model.FormatCSV && req.Format != model.FormatPDF {
		return nil, apperr.Validation(apperr.CodeUnknownFormat, "unsupported report format "+string(req.Format))
	}

	m, err := s.builder.Build(ctx, userID, req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindExternalFetch {
			metrics.RecordFetchFailure("financial")
		}
		return nil, err
	}

	var data []byte
	switch req.Format {
	case model.FormatPDF:
		data, err = report.RenderPDF(m)
	default:
		data, err = report.RenderCSV(m)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.RecordReport(req.ReportType, string(req.Format))

	s.publisher.PublishReport(ctx, events.ReportEvent{
		UserID:     userID,
		ReportType: req.ReportType,
		Format:     req.Format,
		SizeBytes:  len(data),
		CreatedAt:  m.GeneratedAt,
	})

	return &GeneratedReport{
		Data:        data,
		Filename:    report.Filename(req.ReportType, m.GeneratedAt, req.Format),
		ContentType: req.Format.ContentType(),
	}, nil
}

// ListReportTypes returns the static report catalog.
func (s *ReportService) ListReportTypes() []model.ReportTypeDescriptor {
	return report.ListReportTypes()
}
