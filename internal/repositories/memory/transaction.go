package memory

import (
	"time"

	"coinkeep/internal/models"
	"coinkeep/internal/repositories"

	"github.com/shopspring/decimal"
)

// Transactions returns the transaction repository view of the store.
func (s *Store) Transactions() repositories.TransactionRepository {
	return &transactionStore{s: s}
}

// Platform returns the profit ledger view of the store.
func (s *Store) Platform() repositories.PlatformRepository {
	return &platformStore{s: s}
}

func (s *Store) createTransactionLocked(tx *models.Transaction) error {
	if _, ok := s.transactions[tx.TransactionID]; ok {
		return repositories.ErrDuplicateTransaction
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	c := *tx
	s.transactions[tx.TransactionID] = &c
	s.txOrder = append(s.txOrder, tx.TransactionID)
	return nil
}

type transactionStore struct {
	s *Store
}

func (r *transactionStore) Create(tx *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createTransactionLocked(tx)
}

func (r *transactionStore) GetByID(transactionID string) (*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tx, ok := r.s.transactions[transactionID]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	c := *tx
	return &c, nil
}

func (r *transactionStore) ListAll() ([]*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	txs := make([]*models.Transaction, 0, len(r.s.txOrder))
	for _, id := range r.s.txOrder {
		c := *r.s.transactions[id]
		txs = append(txs, &c)
	}
	return txs, nil
}

func (r *transactionStore) CountAll() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.transactions)), nil
}

func (r *transactionStore) ListDeposits(walletAddress string) ([]*models.Transaction, error) {
	return r.filter(func(tx *models.Transaction) bool {
		return tx.RecipientAddress == walletAddress
	})
}

func (r *transactionStore) ListWithdrawals(walletAddress string) ([]*models.Transaction, error) {
	return r.filter(func(tx *models.Transaction) bool {
		return tx.SenderAddress == walletAddress
	})
}

func (r *transactionStore) filter(keep func(*models.Transaction) bool) ([]*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var txs []*models.Transaction
	for _, id := range r.s.txOrder {
		if tx := r.s.transactions[id]; keep(tx) {
			c := *tx
			txs = append(txs, &c)
		}
	}
	return txs, nil
}

type platformStore struct {
	s *Store
}

func (r *platformStore) RecordProfit(transactionID string, profit decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profits[transactionID] = profit
	return nil
}

func (r *platformStore) TotalProfit() (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := decimal.Zero
	for _, p := range r.s.profits {
		total = total.Add(p)
	}
	return total, nil
}
