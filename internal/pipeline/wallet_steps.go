package pipeline

import (
	"context"
	"errors"
	"fmt"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/models"
	"coinkeep/internal/repositories"

	"github.com/google/uuid"
)

// CheckWalletLimit enforces the per-user wallet cap before creation.
type CheckWalletLimit struct {
	Wallets repositories.WalletRepository
}

func (s CheckWalletLimit) Name() string { return "check wallet limit" }

func (s CheckWalletLimit) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("wallet count skipped, no api key provided")
	}

	owned, err := s.Wallets.GetByUser(req.APIKey)
	if err != nil {
		return Continue, fmt.Errorf("failed to count wallets: %w", err)
	}
	if len(owned) >= models.MaxWalletsPerUser {
		return Continue, apperr.ErrWalletLimit
	}
	return Continue, nil
}

// RegisterWallet creates a wallet with the initial deposit and a fresh
// random address, and publishes both on the request.
type RegisterWallet struct {
	Wallets repositories.WalletRepository
}

func (s RegisterWallet) Name() string { return "register wallet" }

func (s RegisterWallet) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("wallet registration skipped, no api key provided")
	}

	wallet := &models.Wallet{
		Address:    uuid.NewString(),
		UserAPIKey: req.APIKey,
		Balance:    models.InitialBalanceBTC,
	}
	if err := s.Wallets.Create(wallet); err != nil {
		return Continue, fmt.Errorf("failed to create wallet: %w", err)
	}

	req.WalletAddress = wallet.Address
	req.Wallet = wallet
	return Continue, nil
}

// LoadWallet fetches the wallet named by the request's address.
type LoadWallet struct {
	Wallets repositories.WalletRepository
}

func (s LoadWallet) Name() string { return "load wallet" }

func (s LoadWallet) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.WalletAddress == "" {
		return req.Skipped("wallet fetch skipped, no wallet address provided")
	}

	wallet, err := s.Wallets.GetByAddress(req.WalletAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return Continue, apperr.ErrWalletNotFound
		}
		return Continue, fmt.Errorf("failed to load wallet: %w", err)
	}
	req.Wallet = wallet
	return Continue, nil
}

// CheckOwnership verifies that the requested wallet belongs to the
// calling user.
type CheckOwnership struct {
	Wallets repositories.WalletRepository
}

func (s CheckOwnership) Name() string { return "check wallet ownership" }

func (s CheckOwnership) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("wallet ownership check skipped, no api key provided")
	}
	if req.WalletAddress == "" {
		return req.Skipped("wallet ownership check skipped, no wallet address provided")
	}

	owned, err := s.Wallets.GetByUser(req.APIKey)
	if err != nil {
		return Continue, fmt.Errorf("failed to load user wallets: %w", err)
	}
	for _, w := range owned {
		if w.Address == req.WalletAddress {
			return Continue, nil
		}
	}
	return Continue, apperr.ErrWalletOwnership
}

// CollectWalletAddresses lists the addresses of every wallet the
// calling user owns.
type CollectWalletAddresses struct {
	Wallets repositories.WalletRepository
}

func (s CollectWalletAddresses) Name() string { return "collect wallet addresses" }

func (s CollectWalletAddresses) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.APIKey == "" {
		return req.Skipped("wallet addresses retrieval skipped, no api key provided")
	}

	owned, err := s.Wallets.GetByUser(req.APIKey)
	if err != nil {
		return Continue, fmt.Errorf("failed to load user wallets: %w", err)
	}

	addresses := make([]string, 0, len(owned))
	for _, w := range owned {
		addresses = append(addresses, w.Address)
	}
	req.WalletAddresses = addresses
	return Continue, nil
}
