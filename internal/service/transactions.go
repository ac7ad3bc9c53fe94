package service

import (
	"context"

	"splittab/internal/calculator"
	"splittab/internal/models"
)

// ListTransactions loads all expenses and transfers and merges them into
// the unified feed, sorted by date descending.
//
// The result is a pure function of the current store contents: no caching,
// safe to call concurrently. If either read fails the whole request fails
// with a store-unavailable error; there is no partial feed.
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	expenses, err := s.store.GetAllExpenses(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	transfers, err := s.store.GetAllTransfers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	return calculator.BuildFeed(expenses, transfers), nil
}
