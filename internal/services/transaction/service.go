// Package transaction exposes transfer creation and transaction
// history lookups.
package transaction

import (
	"context"
	"fmt"
	"strings"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/models"
	"coinkeep/internal/pipeline"

	"github.com/shopspring/decimal"
)

// Service defines the transaction operations.
type Service interface {
	// CreateTransaction transfers amount from the sender wallet to the
	// recipient wallet on behalf of the API key's user. The sender is
	// debited amount plus fee, the recipient credited amount.
	CreateTransaction(ctx context.Context, senderAddress, recipientAddress string, amount decimal.Decimal, apiKey string) (*models.Transaction, error)

	// UserTransactions lists every transfer sent from any of the
	// user's wallets.
	UserTransactions(ctx context.Context, apiKey string) ([]*models.Transaction, error)

	// WalletTransactions lists deposits and withdrawals of one wallet.
	WalletTransactions(ctx context.Context, apiKey, walletAddress string) ([]*models.Transaction, error)
}

type service struct {
	create    *pipeline.Chain
	userTxs   *pipeline.Chain
	walletTxs *pipeline.Chain
}

// NewService creates a new transaction service on top of the given
// chain set.
func NewService(chains *pipeline.ChainSet) Service {
	if chains == nil {
		panic("chain set is required")
	}
	return &service{
		create:    chains.CreateTransaction(),
		userTxs:   chains.UserTransactions(),
		walletTxs: chains.WalletTransactions(),
	}
}

func (s *service) CreateTransaction(ctx context.Context, senderAddress, recipientAddress string, amount decimal.Decimal, apiKey string) (*models.Transaction, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey
	req.SenderAddress = senderAddress
	req.RecipientAddress = recipientAddress
	req.Amount = &amount

	if err := s.create.Run(ctx, req); err != nil {
		return nil, err
	}
	if err := requireComplete(req); err != nil {
		return nil, err
	}
	if req.Transaction == nil {
		return nil, fmt.Errorf("%w: transaction not executed", apperr.ErrIncompleteRequest)
	}
	return req.Transaction, nil
}

func (s *service) UserTransactions(ctx context.Context, apiKey string) ([]*models.Transaction, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey

	if err := s.userTxs.Run(ctx, req); err != nil {
		return nil, err
	}
	if err := requireComplete(req); err != nil {
		return nil, err
	}
	return req.Transactions, nil
}

func (s *service) WalletTransactions(ctx context.Context, apiKey, walletAddress string) ([]*models.Transaction, error) {
	req := pipeline.NewRequest()
	req.APIKey = apiKey
	req.WalletAddresses = []string{walletAddress}

	if err := s.walletTxs.Run(ctx, req); err != nil {
		return nil, err
	}
	if err := requireComplete(req); err != nil {
		return nil, err
	}
	return req.Transactions, nil
}

// requireComplete maps any soft-skip into an incomplete-request error;
// every step of these chains is mandatory for the exposed operations.
func requireComplete(req *pipeline.Request) error {
	if len(req.Skips) > 0 {
		return fmt.Errorf("%w: %s", apperr.ErrIncompleteRequest, strings.Join(req.Skips, "; "))
	}
	return nil
}
