package memory

import (
	"coinkeep/internal/models"
	"coinkeep/internal/repositories"

	"github.com/shopspring/decimal"
)

// Wallets returns the wallet repository view of the store.
func (s *Store) Wallets() repositories.WalletRepository {
	return &walletStore{s: s}
}

type walletStore struct {
	s *Store
	// inTx marks a view handed to an ExecuteInTransaction callback.
	// The callback already holds the write lock, so these views must
	// not lock again.
	inTx bool
}

func (r *walletStore) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *walletStore) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *walletStore) Create(wallet *models.Wallet) error {
	defer r.lock()()

	if _, ok := r.s.wallets[wallet.Address]; ok {
		return repositories.ErrDuplicateWallet
	}
	c := *wallet
	r.s.wallets[wallet.Address] = &c
	return nil
}

func (r *walletStore) GetByAddress(address string) (*models.Wallet, error) {
	defer r.rlock()()

	wallet, ok := r.s.wallets[address]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	c := *wallet
	return &c, nil
}

// GetByAddressForUpdate is the same read as GetByAddress; the store's
// write lock held for the whole ExecuteInTransaction boundary already
// serializes concurrent transfers.
func (r *walletStore) GetByAddressForUpdate(address string) (*models.Wallet, error) {
	return r.GetByAddress(address)
}

func (r *walletStore) GetByUser(apiKey string) ([]*models.Wallet, error) {
	defer r.rlock()()

	var wallets []*models.Wallet
	for _, w := range r.s.wallets {
		if w.UserAPIKey == apiKey {
			c := *w
			wallets = append(wallets, &c)
		}
	}
	return wallets, nil
}

func (r *walletStore) Update(wallet *models.Wallet) error {
	defer r.lock()()

	if _, ok := r.s.wallets[wallet.Address]; !ok {
		return repositories.ErrWalletNotFound
	}
	c := *wallet
	r.s.wallets[wallet.Address] = &c
	return nil
}

func (r *walletStore) Delete(address string) error {
	defer r.lock()()

	if _, ok := r.s.wallets[address]; !ok {
		return repositories.ErrWalletNotFound
	}
	delete(r.s.wallets, address)
	return nil
}

func (r *walletStore) CreateTransaction(tx *models.Transaction) error {
	defer r.lock()()
	return r.s.createTransactionLocked(tx)
}

func (r *walletStore) RecordProfit(transactionID string, profit decimal.Decimal) error {
	defer r.lock()()
	r.s.profits[transactionID] = profit
	return nil
}

// ExecuteInTransaction runs fn under the store's write lock against an
// unlocked view, restoring a snapshot if fn fails. Nested calls join
// the outer boundary.
func (r *walletStore) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	if r.inTx {
		return fn(r)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.takeSnapshot()
	if err := fn(&walletStore{s: r.s, inTx: true}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
