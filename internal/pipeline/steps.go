package pipeline

import (
	"context"
	"errors"
	"fmt"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/repositories"

	"github.com/shopspring/decimal"
)

// RateConverter is the slice of the rates service the pipeline needs.
type RateConverter interface {
	Convert(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error)
}

// ValidateAPIKey verifies that the request's API key resolves to an
// existing user.
type ValidateAPIKey struct {
	Users repositories.UserRepository
}

func (s ValidateAPIKey) Name() string { return "validate api key" }

func (s ValidateAPIKey) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("api key validation skipped, no api key provided")
	}

	if _, err := s.Users.GetByAPIKey(req.APIKey); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return Continue, apperr.ErrUserNotFound
		}
		return Continue, fmt.Errorf("failed to look up user: %w", err)
	}
	return Continue, nil
}

// FetchExchangeRate resolves the current BTC to USD rate for one coin
// and stores it on the request.
type FetchExchangeRate struct {
	Rates RateConverter
}

func (s FetchExchangeRate) Name() string { return "fetch exchange rate" }

func (s FetchExchangeRate) Run(ctx context.Context, req *Request) (Outcome, error) {
	rate, err := s.Rates.Convert(ctx, "btc", "usd", decimal.NewFromInt(1))
	if err != nil {
		return Continue, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	req.ExchangeRate = &rate
	return Continue, nil
}
