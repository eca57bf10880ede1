package memory

import (
	"errors"
	"testing"
	"time"

	"coinkeep/internal/models"
	"coinkeep/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallet(apiKey, balance string) *models.Wallet {
	return &models.Wallet{
		Address:    uuid.NewString(),
		UserAPIKey: apiKey,
		Balance:    decimal.RequireFromString(balance),
	}
}

func TestWalletStore_CRUD(t *testing.T) {
	store := NewStore()
	wallets := store.Wallets()

	wallet := newWallet("key", "1")
	require.NoError(t, wallets.Create(wallet))

	t.Run("duplicate address", func(t *testing.T) {
		assert.ErrorIs(t, wallets.Create(wallet), repositories.ErrDuplicateWallet)
	})

	t.Run("reads return copies", func(t *testing.T) {
		got, err := wallets.GetByAddress(wallet.Address)
		require.NoError(t, err)
		got.Balance = decimal.NewFromInt(99)

		again, err := wallets.GetByAddress(wallet.Address)
		require.NoError(t, err)
		assert.Equal(t, "1", again.Balance.String())
	})

	t.Run("update unknown wallet", func(t *testing.T) {
		assert.ErrorIs(t, wallets.Update(newWallet("key", "1")), repositories.ErrWalletNotFound)
	})

	t.Run("get by user", func(t *testing.T) {
		require.NoError(t, wallets.Create(newWallet("key", "2")))
		require.NoError(t, wallets.Create(newWallet("other", "3")))

		owned, err := wallets.GetByUser("key")
		require.NoError(t, err)
		assert.Len(t, owned, 2)
	})
}

func TestWalletStore_ExecuteInTransaction(t *testing.T) {
	t.Run("commits all writes", func(t *testing.T) {
		store := NewStore()
		wallets := store.Wallets()
		sender := newWallet("a", "1")
		recipient := newWallet("b", "1")
		require.NoError(t, wallets.Create(sender))
		require.NoError(t, wallets.Create(recipient))

		err := wallets.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			sender.Balance = decimal.RequireFromString("0.5")
			recipient.Balance = decimal.RequireFromString("1.5")
			if err := tx.Update(sender); err != nil {
				return err
			}
			if err := tx.Update(recipient); err != nil {
				return err
			}
			return tx.CreateTransaction(&models.Transaction{
				TransactionID:    uuid.NewString(),
				SenderAddress:    sender.Address,
				RecipientAddress: recipient.Address,
				Amount:           decimal.RequireFromString("0.5"),
				Fee:              decimal.Zero,
			})
		})
		require.NoError(t, err)

		got, err := wallets.GetByAddress(sender.Address)
		require.NoError(t, err)
		assert.Equal(t, "0.5", got.Balance.String())

		count, err := store.Transactions().CountAll()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back every write on failure", func(t *testing.T) {
		store := NewStore()
		wallets := store.Wallets()
		sender := newWallet("a", "1")
		require.NoError(t, wallets.Create(sender))

		boom := errors.New("boom")
		err := wallets.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			sender.Balance = decimal.Zero
			if err := tx.Update(sender); err != nil {
				return err
			}
			if err := tx.CreateTransaction(&models.Transaction{
				TransactionID:    uuid.NewString(),
				SenderAddress:    sender.Address,
				RecipientAddress: uuid.NewString(),
				Amount:           decimal.NewFromInt(1),
				Fee:              decimal.Zero,
			}); err != nil {
				return err
			}
			if err := tx.RecordProfit(uuid.NewString(), decimal.RequireFromString("0.01")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := wallets.GetByAddress(sender.Address)
		require.NoError(t, err)
		assert.Equal(t, "1", got.Balance.String())

		count, err := store.Transactions().CountAll()
		require.NoError(t, err)
		assert.Zero(t, count)

		profit, err := store.Platform().TotalProfit()
		require.NoError(t, err)
		assert.True(t, profit.IsZero())
	})
}

func TestTransactionStore_Filters(t *testing.T) {
	store := NewStore()
	txs := store.Transactions()

	a, b := uuid.NewString(), uuid.NewString()
	first := &models.Transaction{
		TransactionID: uuid.NewString(), SenderAddress: a, RecipientAddress: b,
		Amount: decimal.NewFromInt(1), Fee: decimal.Zero,
	}
	second := &models.Transaction{
		TransactionID: uuid.NewString(), SenderAddress: b, RecipientAddress: a,
		Amount: decimal.NewFromInt(2), Fee: decimal.Zero,
	}
	require.NoError(t, txs.Create(first))
	require.NoError(t, txs.Create(second))

	t.Run("duplicate id", func(t *testing.T) {
		assert.ErrorIs(t, txs.Create(first), repositories.ErrDuplicateTransaction)
	})

	t.Run("stamps creation time", func(t *testing.T) {
		got, err := txs.GetByID(first.TransactionID)
		require.NoError(t, err)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("keeps a supplied creation time", func(t *testing.T) {
		stamped := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		tx := &models.Transaction{
			TransactionID: uuid.NewString(), SenderAddress: uuid.NewString(), RecipientAddress: uuid.NewString(),
			Amount: decimal.NewFromInt(1), Fee: decimal.Zero, CreatedAt: stamped,
		}
		require.NoError(t, txs.Create(tx))

		got, err := txs.GetByID(tx.TransactionID)
		require.NoError(t, err)
		assert.True(t, got.CreatedAt.Equal(stamped))
	})

	t.Run("withdrawals by sender", func(t *testing.T) {
		got, err := txs.ListWithdrawals(a)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.TransactionID, got[0].TransactionID)
	})

	t.Run("deposits by recipient", func(t *testing.T) {
		got, err := txs.ListDeposits(a)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.TransactionID, got[0].TransactionID)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		all, err := txs.ListAll()
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 2)
		assert.Equal(t, first.TransactionID, all[0].TransactionID)
		assert.Equal(t, second.TransactionID, all[1].TransactionID)
	})
}

func TestUserStore(t *testing.T) {
	store := NewStore()
	users := store.Users()

	user := &models.User{Email: "alice@example.com", Password: "hashed", APIKey: uuid.NewString()}
	require.NoError(t, users.Create(user))

	t.Run("duplicate email", func(t *testing.T) {
		dup := &models.User{Email: "alice@example.com", Password: "x", APIKey: uuid.NewString()}
		assert.ErrorIs(t, users.Create(dup), repositories.ErrEmailTaken)
	})

	t.Run("lookup by api key and email", func(t *testing.T) {
		byKey, err := users.GetByAPIKey(user.APIKey)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byKey.Email)

		byEmail, err := users.GetByEmail(user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.APIKey, byEmail.APIKey)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := users.GetByAPIKey(uuid.NewString())
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	})
}
