package repositories

import (
	"errors"

	"coinkeep/internal/models"

	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines read access to the transaction ledger.
// Deposits are transactions whose recipient is the given wallet,
// withdrawals those whose sender is.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByID(transactionID string) (*models.Transaction, error)
	ListAll() ([]*models.Transaction, error)
	CountAll() (int64, error)
	ListDeposits(walletAddress string) ([]*models.Transaction, error)
	ListWithdrawals(walletAddress string) ([]*models.Transaction, error)
}

// PlatformRepository is the platform profit ledger.
type PlatformRepository interface {
	RecordProfit(transactionID string, profit decimal.Decimal) error
	TotalProfit() (decimal.Decimal, error)
}
