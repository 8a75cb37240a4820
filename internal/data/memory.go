package data

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// MemoryFinancialSource is an in-memory financial data source (would be
// replaced with the persistence service in production).
type MemoryFinancialSource struct {
	mu      sync.RWMutex
	records map[string][]model.TransactionRecord
}

// NewMemoryFinancialSource creates an empty in-memory source.
func NewMemoryFinancialSource() *MemoryFinancialSource {
	return &MemoryFinancialSource{records: make(map[string][]model.TransactionRecord)}
}

// Seed replaces the records for a user.
func (s *MemoryFinancialSource) Seed(userID string, records []model.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = records
}

// Fetch returns the user's records matching the filters, ordered by date
// then ID so results are deterministic.
func (s *MemoryFinancialSource) Fetch(ctx context.Context, userID string, filters model.TransactionFilters) ([]model.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.TransactionRecord
	for _, rec := range s.records[userID] {
		if filters.From != nil && rec.Date.Before(*filters.From) {
			continue
		}
		if filters.To != nil && rec.Date.After(*filters.To) {
			continue
		}
		if filters.Category != "" && rec.Category != filters.Category {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// MemoryTripSource is an in-memory trip data source.
type MemoryTripSource struct {
	mu    sync.RWMutex
	trips map[string]*model.TripContext
}

// NewMemoryTripSource creates an empty in-memory trip source.
func NewMemoryTripSource() *MemoryTripSource {
	return &MemoryTripSource{trips: make(map[string]*model.TripContext)}
}

// Seed sets the trip for a user.
func (s *MemoryTripSource) Seed(userID string, trip *model.TripContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[userID] = trip
}

// Fetch returns the user's trip, or nil when none is known.
func (s *MemoryTripSource) Fetch(ctx context.Context, userID string) (*model.TripContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips[userID], nil
}

// SampleTransactions returns a deterministic demo data set anchored at now.
func SampleTransactions(now time.Time) []model.TransactionRecord {
	thisMonth := time.Date(now.Year(), now.Month(), 5, 12, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	return []model.TransactionRecord{
		{ID: "tx-001", Date: lastMonth, Category: "groceries", Description: "Supermarket", AmountCents: 18250, Currency: "EUR", Direction: model.DirectionExpense},
		{ID: "tx-002", Date: lastMonth.AddDate(0, 0, 3), Category: "rent", Description: "Monthly rent", AmountCents: 85000, Currency: "EUR", Direction: model.DirectionExpense},
		{ID: "tx-003", Date: lastMonth.AddDate(0, 0, 10), Category: "transport", Description: "Metro pass", AmountCents: 3000, Currency: "EUR", Direction: model.DirectionExpense},
		{ID: "tx-004", Date: lastMonth.AddDate(0, 0, 12), Category: "entertainment", Description: "Cinema", AmountCents: 2400, Currency: "EUR", Direction: model.DirectionExpense, SharedWith: "alex"},
		{ID: "tx-005", Date: lastMonth.AddDate(0, 0, 20), Category: "salary", Description: "Payroll", AmountCents: 210000, Currency: "EUR", Direction: model.DirectionIncome},
		{ID: "tx-006", Date: thisMonth, Category: "groceries", Description: "Supermarket", AmountCents: 9600, Currency: "EUR", Direction: model.DirectionExpense},
		{ID: "tx-007", Date: thisMonth.AddDate(0, 0, 2), Category: "food", Description: "Dinner out", AmountCents: 5400, Currency: "EUR", Direction: model.DirectionExpense, SharedWith: "alex"},
		{ID: "tx-008", Date: thisMonth.AddDate(0, 0, 4), Category: "travel", Description: "Flight deposit", AmountCents: 12000, Currency: "EUR", Direction: model.DirectionExpense},
	}
}
