package repositories

import (
	"errors"
	"fmt"

	"coinkeep/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	result := r.db.Create(tx)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

func (r *transactionRepository) GetByID(transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Where("transaction_id = ?", transactionID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListAll() ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := r.db.Order("created_at ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) ListDeposits(walletAddress string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("recipient_address = ?", walletAddress).
		Order("created_at ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListWithdrawals(walletAddress string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("sender_address = ?", walletAddress).
		Order("created_at ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return txs, nil
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) RecordProfit(transactionID string, profit decimal.Decimal) error {
	entry := &models.ProfitEntry{TransactionID: transactionID, Profit: profit}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record profit: %w", err)
	}
	return nil
}

func (r *platformRepository) TotalProfit() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&models.ProfitEntry{}).
		Select("SUM(profit)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum profit: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
