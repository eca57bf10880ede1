// Package stats exposes the admin-only platform statistics.
package stats

import (
	"context"
	"fmt"
	"strings"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/pipeline"

	"github.com/shopspring/decimal"
)

// Statistics are the platform-wide aggregates.
type Statistics struct {
	TotalTransactions int64           `json:"total_transactions"`
	PlatformProfit    decimal.Decimal `json:"platform_profit"`
}

// Service defines the statistics operations.
type Service interface {
	Statistics(ctx context.Context, apiKey string) (*Statistics, error)
}

type service struct {
	statistics *pipeline.Chain
}

// NewService creates a new statistics service on top of the given
// chain set.
func NewService(chains *pipeline.ChainSet) Service {
	if chains == nil {
		panic("chain set is required")
	}
	return &service{statistics: chains.Statistics()}
}

func (s *service) Statistics(ctx context.Context, apiKey string) (*Statistics, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey

	if err := s.statistics.Run(ctx, req); err != nil {
		return nil, err
	}
	if len(req.Skips) > 0 {
		return nil, fmt.Errorf("%w: %s", apperr.ErrIncompleteRequest, strings.Join(req.Skips, "; "))
	}

	return &Statistics{
		TotalTransactions: req.TotalTransactions,
		PlatformProfit:    req.PlatformProfit,
	}, nil
}
