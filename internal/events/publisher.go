package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/model"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
)

const (
	// StreamName is the name of the assistant events stream.
	StreamName = "ASSISTANT_EVENTS"

	// SubjectPrefix is the prefix for all assistant event subjects.
	SubjectPrefix = "assistant"
)

// QueryEvent records one processed chatbot query.
type QueryEvent struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Variant      model.Variant      `json:"variant"`
	Language     model.LanguageCode `json:"language"`
	IntentID     string             `json:"intent_id"`
	ResponseType model.ResponseType `json:"response_type"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ReportEvent records one generated report.
type ReportEvent struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	ReportType string             `json:"report_type"`
	Format     model.ReportFormat `json:"format"`
	SizeBytes  int                `json:"size_bytes"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Publisher publishes assistant events to JetStream. A nil Publisher is
// valid and drops everything, so callers need no NATS in tests.
type Publisher struct {
	client *Client
	logger *logger.Logger
}

// NewPublisher creates a publisher over an established client.
func NewPublisher(client *Client, log *logger.Logger) *Publisher {
	return &Publisher{client: client, logger: log}
}

// EnsureStream ensures the assistant events stream exists.
func (p *Publisher) EnsureStream(ctx context.Context) error {
	js := p.client.JetStream()

	if _, err := js.Stream(ctx, StreamName); err == nil {
		return nil
	}

	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      90 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Description: "Assistant query and report analytics events",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

// PublishQuery publishes a processed-query event, best-effort.
func (p *Publisher) PublishQuery(ctx context.Context, ev QueryEvent) {
	if p == nil || p.client == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.Must(uuid.NewV7()).String()
	}
	subject := fmt.Sprintf("%s.%s.query.%s", SubjectPrefix, ev.Variant, ev.IntentID)
	p.publish(ctx, subject, ev)
}

// PublishReport publishes a report-generated event, best-effort.
func (p *Publisher) PublishReport(ctx context.Context, ev ReportEvent) {
	if p == nil || p.client == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.Must(uuid.NewV7()).String()
	}
	subject := fmt.Sprintf("%s.reports.%s.%s", SubjectPrefix, ev.ReportType, ev.Format)
	p.publish(ctx, subject, ev)
}

func (p *Publisher) publish(ctx context.Context, subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal event", zap.String("subject", subject), zap.Error(err))
		return
	}
	if _, err := p.client.JetStream().Publish(ctx, subject, data); err != nil {
		p.logger.Warn("failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
