// Package data defines the external collaborator interfaces the core
// consumes, plus in-memory implementations used until the real persistence
// services are wired in.
package data

import (
	"context"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// FinancialDataSource supplies raw transaction records for report building
// and for live-data answers in the finance dialogue policy.
type FinancialDataSource interface {
	Fetch(ctx context.Context, userID string, filters model.TransactionFilters) ([]model.TransactionRecord, error)
}

// TripDataSource supplies the user's trip context when the caller does not
// pass one explicitly.
type TripDataSource interface {
	Fetch(ctx context.Context, userID string) (*model.TripContext, error)
}
