// Package wallet exposes the wallet operations: creating a wallet with
// its initial deposit and fetching a wallet with its USD valuation.
package wallet

import (
	"context"
	"fmt"
	"strings"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/models"
	"coinkeep/internal/pipeline"

	"github.com/shopspring/decimal"
)

// View is a wallet together with its current USD valuation.
type View struct {
	Wallet     *models.Wallet
	BalanceUSD decimal.Decimal
}

// Service defines the wallet operations.
type Service interface {
	AddWallet(ctx context.Context, apiKey string) (*View, error)
	FetchWallet(ctx context.Context, apiKey, address string) (*View, error)
}

type service struct {
	addWallet   *pipeline.Chain
	fetchWallet *pipeline.Chain
}

// NewService creates a new wallet service on top of the given chain
// set.
func NewService(chains *pipeline.ChainSet) Service {
	if chains == nil {
		panic("chain set is required")
	}
	return &service{
		addWallet:   chains.AddWallet(),
		fetchWallet: chains.FetchWallet(),
	}
}

func (s *service) AddWallet(ctx context.Context, apiKey string) (*View, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey

	if err := s.addWallet.Run(ctx, req); err != nil {
		return nil, err
	}
	if err := requireComplete(req); err != nil {
		return nil, err
	}
	return viewFrom(req)
}

func (s *service) FetchWallet(ctx context.Context, apiKey, address string) (*View, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey
	req.WalletAddress = address

	if err := s.fetchWallet.Run(ctx, req); err != nil {
		return nil, err
	}
	if err := requireComplete(req); err != nil {
		return nil, err
	}
	return viewFrom(req)
}

// requireComplete maps any soft-skip into an incomplete-request error.
// Every step of the wallet chains is mandatory for these operations.
func requireComplete(req *pipeline.Request) error {
	if len(req.Skips) > 0 {
		return fmt.Errorf("%w: %s", apperr.ErrIncompleteRequest, strings.Join(req.Skips, "; "))
	}
	return nil
}

func viewFrom(req *pipeline.Request) (*View, error) {
	if req.Wallet == nil || req.ExchangeRate == nil {
		return nil, fmt.Errorf("%w: wallet or exchange rate not resolved", apperr.ErrIncompleteRequest)
	}
	return &View{
		Wallet:     req.Wallet,
		BalanceUSD: req.Wallet.Balance.Mul(*req.ExchangeRate),
	}, nil
}
