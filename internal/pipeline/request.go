// Package pipeline implements the wallet and transaction processing
// chains: ordered lists of single-responsibility steps operating on a
// shared, typed request. Steps either continue, skip (recording why)
// or fail with a typed domain error that aborts the chain.
package pipeline

import (
	"coinkeep/internal/models"

	"github.com/shopspring/decimal"
)

// Request is the mutable state threaded through a chain. A fresh
// Request is allocated per operation and discarded afterwards; it is
// never shared between invocations.
//
// Pointer and slice fields distinguish "not supplied" (nil) from
// "supplied but zero", which drives the skip behaviour.
type Request struct {
	APIKey           string
	WalletAddress    string
	SenderAddress    string
	RecipientAddress string
	Amount           *decimal.Decimal

	// Derived along the way
	Fee             *decimal.Decimal
	ExchangeRate    *decimal.Decimal
	Wallet          *models.Wallet
	SenderWallet    *models.Wallet
	RecipientWallet *models.Wallet
	Transaction     *models.Transaction
	WalletAddresses []string
	Transactions    []*models.Transaction

	TotalTransactions int64
	PlatformProfit    decimal.Decimal

	// Skips is the append-only log of steps that could not run
	// because an input was missing. Non-fatal inside the chain; the
	// services decide what a non-empty log means for their operation.
	Skips []string
}

// NewRequest returns an empty request ready to be populated with
// operation inputs.
func NewRequest() *Request {
	return &Request{}
}

// Skipped records why a step did not run and returns the Skip outcome.
func (r *Request) Skipped(reason string) (Outcome, error) {
	r.Skips = append(r.Skips, reason)
	return Skip, nil
}

// AmountOrZero returns the supplied amount, or zero when absent.
func (r *Request) AmountOrZero() decimal.Decimal {
	if r.Amount == nil {
		return decimal.Zero
	}
	return *r.Amount
}

// FeeOrZero returns the computed fee fraction, or zero when absent.
func (r *Request) FeeOrZero() decimal.Decimal {
	if r.Fee == nil {
		return decimal.Zero
	}
	return *r.Fee
}
