package pipeline

import (
	"context"
	"errors"
	"fmt"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/models"
	"coinkeep/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadTransactionWallets loads the sender and recipient wallets,
// checked independently so the caller learns which side is missing.
type LoadTransactionWallets struct {
	Wallets repositories.WalletRepository
}

func (s LoadTransactionWallets) Name() string { return "load transaction wallets" }

func (s LoadTransactionWallets) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.SenderAddress == "" || req.RecipientAddress == "" {
		return req.Skipped("wallet existence check skipped, wallet addresses not provided")
	}

	sender, err := s.Wallets.GetByAddress(req.SenderAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return Continue, apperr.ErrSenderWalletNotFound
		}
		return Continue, fmt.Errorf("failed to load sender wallet: %w", err)
	}

	recipient, err := s.Wallets.GetByAddress(req.RecipientAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return Continue, apperr.ErrRecipientWalletNotFound
		}
		return Continue, fmt.Errorf("failed to load recipient wallet: %w", err)
	}

	req.SenderWallet = sender
	req.RecipientWallet = recipient
	return Continue, nil
}

// ComputeFee determines the fee fraction for a transfer: zero between
// a user's own wallets, CrossUserFee otherwise. The sender wallet must
// belong to the caller.
type ComputeFee struct {
	Wallets repositories.WalletRepository
}

func (s ComputeFee) Name() string { return "compute fee" }

func (s ComputeFee) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.SenderAddress == "" || req.RecipientAddress == "" || req.APIKey == "" {
		return req.Skipped("fee calculation skipped, missing required attributes")
	}

	owned, err := s.Wallets.GetByUser(req.APIKey)
	if err != nil {
		return Continue, fmt.Errorf("failed to load user wallets: %w", err)
	}

	ownsSender, ownsRecipient := false, false
	for _, w := range owned {
		if w.Address == req.SenderAddress {
			ownsSender = true
		}
		if w.Address == req.RecipientAddress {
			ownsRecipient = true
		}
	}

	if !ownsSender {
		return Continue, apperr.ErrSenderOwnership
	}

	fee := decimal.Zero
	if !ownsRecipient {
		fee = models.CrossUserFee
	}
	req.Fee = &fee
	return Continue, nil
}

// CheckBalance validates the amount and verifies the sender can cover
// amount plus fee.
type CheckBalance struct{}

func (s CheckBalance) Name() string { return "check balance" }

func (s CheckBalance) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.SenderWallet == nil || req.Amount == nil {
		return req.Skipped("balance check skipped, missing required attributes")
	}

	amount := *req.Amount
	if amount.IsNegative() {
		return Continue, apperr.ErrNegativeAmount
	}

	charged := amount.Mul(decimal.NewFromInt(1).Add(req.FeeOrZero()))
	if req.SenderWallet.Balance.LessThan(charged) {
		return Continue, apperr.ErrInsufficientBalance
	}
	return Continue, nil
}

// ExecuteTransfer debits the sender by amount plus fee, credits the
// recipient by amount, records the transaction and, when a fee was
// charged, the platform's profit. All four writes share one
// transactional boundary. Both wallets are re-read under a row lock
// inside that boundary and the balance is re-verified there, so
// concurrent transfers from the same wallet serialize instead of
// overwriting each other's debits. The step refuses to run if any
// earlier step was skipped.
type ExecuteTransfer struct {
	Wallets repositories.WalletRepository
}

func (s ExecuteTransfer) Name() string { return "execute transfer" }

func (s ExecuteTransfer) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.SenderWallet == nil || req.RecipientWallet == nil || req.Amount == nil || req.Fee == nil {
		return req.Skipped("transaction execution skipped, missing required attributes")
	}
	if len(req.Skips) > 0 {
		return req.Skipped("transaction execution aborted, earlier steps were skipped")
	}

	amount := *req.Amount
	fee := *req.Fee
	charged := amount.Mul(decimal.NewFromInt(1).Add(fee))

	senderAddress := req.SenderWallet.Address
	recipientAddress := req.RecipientWallet.Address
	txn := &models.Transaction{
		TransactionID:    uuid.NewString(),
		SenderAddress:    senderAddress,
		RecipientAddress: recipientAddress,
		Amount:           amount,
		Fee:              fee,
	}

	var sender, recipient *models.Wallet
	err := s.Wallets.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		// Lock in address order so two opposing transfers cannot
		// deadlock on each other's rows.
		var err error
		if senderAddress < recipientAddress {
			sender, err = tx.GetByAddressForUpdate(senderAddress)
			if err == nil {
				recipient, err = tx.GetByAddressForUpdate(recipientAddress)
			}
		} else {
			recipient, err = tx.GetByAddressForUpdate(recipientAddress)
			if err == nil {
				sender, err = tx.GetByAddressForUpdate(senderAddress)
			}
		}
		if err != nil {
			return err
		}

		// CheckBalance ran against a snapshot; the locked read is the
		// balance that counts.
		if sender.Balance.LessThan(charged) {
			return apperr.ErrInsufficientBalance
		}

		sender.Balance = sender.Balance.Sub(charged)
		recipient.Balance = recipient.Balance.Add(amount)

		if err := tx.Update(sender); err != nil {
			return err
		}
		if err := tx.Update(recipient); err != nil {
			return err
		}
		if err := tx.CreateTransaction(txn); err != nil {
			return err
		}
		if fee.IsPositive() {
			return tx.RecordProfit(txn.TransactionID, fee.Mul(amount))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrInsufficientBalance) {
			return Continue, apperr.ErrInsufficientBalance
		}
		return Continue, fmt.Errorf("failed to execute transfer: %w", err)
	}

	req.SenderWallet = sender
	req.RecipientWallet = recipient
	req.Transaction = txn
	return Continue, nil
}

// CollectWithdrawals appends every transaction sent from the request's
// wallet addresses.
type CollectWithdrawals struct {
	Transactions repositories.TransactionRepository
}

func (s CollectWithdrawals) Name() string { return "collect withdrawals" }

func (s CollectWithdrawals) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.WalletAddresses == nil {
		return req.Skipped("fetching withdrawals skipped, no wallet addresses provided")
	}

	collected := req.Transactions
	for _, address := range req.WalletAddresses {
		txs, err := s.Transactions.ListWithdrawals(address)
		if err != nil {
			return Continue, fmt.Errorf("failed to list withdrawals: %w", err)
		}
		collected = append(collected, txs...)
	}
	if collected == nil {
		collected = []*models.Transaction{}
	}
	req.Transactions = collected
	return Continue, nil
}

// CollectDeposits appends every transaction received by the request's
// wallet addresses.
type CollectDeposits struct {
	Transactions repositories.TransactionRepository
}

func (s CollectDeposits) Name() string { return "collect deposits" }

func (s CollectDeposits) Run(ctx context.Context, req *Request) (Outcome, error) {
	if req.WalletAddresses == nil {
		return req.Skipped("fetching deposits skipped, no wallet addresses provided")
	}

	collected := req.Transactions
	for _, address := range req.WalletAddresses {
		txs, err := s.Transactions.ListDeposits(address)
		if err != nil {
			return Continue, fmt.Errorf("failed to list deposits: %w", err)
		}
		collected = append(collected, txs...)
	}
	if collected == nil {
		collected = []*models.Transaction{}
	}
	req.Transactions = collected
	return Continue, nil
}
