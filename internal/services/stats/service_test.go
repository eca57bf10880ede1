package stats

import (
	"context"
	"testing"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/models"
	"coinkeep/internal/pipeline"
	"coinkeep/internal/repositories/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConverter struct{}

func (staticConverter) Convert(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	return decimal.RequireFromString("60000").Mul(amount), nil
}

func TestService_Statistics(t *testing.T) {
	store := memory.NewStore()
	adminKey := uuid.NewString()
	chains := pipeline.NewChainSet(
		store.Users(), store.Wallets(), store.Transactions(), store.Platform(),
		staticConverter{}, adminKey,
	)
	svc := NewService(chains)

	for i, profit := range []string{"0.003", "0.0015"} {
		txn := &models.Transaction{
			TransactionID:    uuid.NewString(),
			SenderAddress:    uuid.NewString(),
			RecipientAddress: uuid.NewString(),
			Amount:           decimal.NewFromInt(int64(i + 1)),
			Fee:              models.CrossUserFee,
		}
		require.NoError(t, store.Transactions().Create(txn))
		require.NoError(t, store.Platform().RecordProfit(txn.TransactionID, decimal.RequireFromString(profit)))
	}

	t.Run("admin sees totals", func(t *testing.T) {
		got, err := svc.Statistics(context.Background(), adminKey)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalTransactions)
		assert.Equal(t, "0.0045", got.PlatformProfit.String())
	})

	t.Run("regular key is rejected", func(t *testing.T) {
		_, err := svc.Statistics(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, apperr.ErrNotAdmin)
	})

	t.Run("missing key is incomplete", func(t *testing.T) {
		_, err := svc.Statistics(context.Background(), "")
		assert.ErrorIs(t, err, apperr.ErrIncompleteRequest)
	})
}
