// Package memory provides an in-memory implementation of the store
// interfaces, used for tests and for STORAGE_BACKEND=memory. A single
// Store backs all repositories so a transfer's debit, credit,
// transaction record and profit entry share one mutex and one rollback
// boundary.
package memory

import (
	"sync"

	"coinkeep/internal/models"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]*models.User // api key -> user
	wallets      map[string]*models.Wallet
	transactions map[string]*models.Transaction
	txOrder      []string
	profits      map[string]decimal.Decimal
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		wallets:      make(map[string]*models.Wallet),
		transactions: make(map[string]*models.Transaction),
		profits:      make(map[string]decimal.Decimal),
	}
}

// snapshot captures the mutable state touched by transfers. Callers
// must hold the write lock.
type snapshot struct {
	wallets      map[string]*models.Wallet
	transactions map[string]*models.Transaction
	txOrder      []string
	profits      map[string]decimal.Decimal
}

func (s *Store) takeSnapshot() snapshot {
	snap := snapshot{
		wallets:      make(map[string]*models.Wallet, len(s.wallets)),
		transactions: make(map[string]*models.Transaction, len(s.transactions)),
		txOrder:      append([]string(nil), s.txOrder...),
		profits:      make(map[string]decimal.Decimal, len(s.profits)),
	}
	for addr, w := range s.wallets {
		c := *w
		snap.wallets[addr] = &c
	}
	for id, tx := range s.transactions {
		c := *tx
		snap.transactions[id] = &c
	}
	for id, p := range s.profits {
		snap.profits[id] = p
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.wallets = snap.wallets
	s.transactions = snap.transactions
	s.txOrder = snap.txOrder
	s.profits = snap.profits
}
