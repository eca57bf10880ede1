package repositories

import (
	"errors"

	"coinkeep/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrDuplicateWallet      = errors.New("wallet already exists")
	ErrDuplicateTransaction = errors.New("transaction already exists")
)

// WalletRepository defines the interface for wallet-related store
// operations. It also exposes the transaction and profit writes needed
// inside a transfer, so the debit, the credit, the transaction record
// and the profit entry can share one transactional boundary via
// ExecuteInTransaction.
type WalletRepository interface {
	// Core wallet operations
	Create(wallet *models.Wallet) error
	GetByAddress(address string) (*models.Wallet, error)

	// GetByAddressForUpdate reads a wallet with a row lock. Only
	// meaningful inside ExecuteInTransaction; concurrent transfers
	// touching the same wallet serialize on it.
	GetByAddressForUpdate(address string) (*models.Wallet, error)

	GetByUser(apiKey string) ([]*models.Wallet, error)
	Update(wallet *models.Wallet) error
	Delete(address string) error

	// Writes that must be able to join a transfer's boundary
	CreateTransaction(tx *models.Transaction) error
	RecordProfit(transactionID string, profit decimal.Decimal) error

	// ExecuteInTransaction runs fn atomically: either every store call
	// made through the passed repository commits, or none do.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
