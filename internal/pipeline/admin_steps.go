package pipeline

import (
	"context"
	"fmt"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/repositories"
)

// RequireAdmin only lets the configured admin key through.
type RequireAdmin struct {
	AdminKey string
}

func (s RequireAdmin) Name() string { return "require admin" }

func (s RequireAdmin) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("admin key validation skipped, no api key provided")
	}
	if req.APIKey != s.AdminKey {
		return Continue, apperr.ErrNotAdmin
	}
	return Continue, nil
}

// CollectStatistics aggregates the transaction count and the platform
// profit onto the request.
type CollectStatistics struct {
	Transactions repositories.TransactionRepository
	Platform     repositories.PlatformRepository
}

func (s CollectStatistics) Name() string { return "collect statistics" }

func (s CollectStatistics) Run(ctx context.Context, req *Request) (Outcome, error) {
	total, err := s.Transactions.CountAll()
	if err != nil {
		return Continue, fmt.Errorf("failed to count transactions: %w", err)
	}
	profit, err := s.Platform.TotalProfit()
	if err != nil {
		return Continue, fmt.Errorf("failed to total profit: %w", err)
	}

	req.TotalTransactions = total
	req.PlatformProfit = profit
	return Continue, nil
}
