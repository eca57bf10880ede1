package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrossUserFee is the fee fraction charged when the recipient wallet
// is not owned by the sender. Transfers between a user's own wallets
// are free.
var CrossUserFee = decimal.RequireFromString("0.015")

// Transaction is an immutable record of a completed transfer.
// Fee is a fraction of Amount, not an absolute value.
type Transaction struct {
	ID               uint            `gorm:"primarykey" json:"-"`
	TransactionID    string          `gorm:"uniqueIndex;not null" json:"transaction_id"`
	SenderAddress    string          `gorm:"index;not null" json:"sender_address"`
	RecipientAddress string          `gorm:"index;not null" json:"recipient_address"`
	Amount           decimal.Decimal `gorm:"type:numeric(30,8);not null" json:"amount_btc"`
	Fee              decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"fee"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ProfitEntry records the platform's cut of a single fee-bearing
// transaction. The sum of all entries is the platform profit.
type ProfitEntry struct {
	ID            uint            `gorm:"primarykey"`
	TransactionID string          `gorm:"uniqueIndex;not null"`
	Profit        decimal.Decimal `gorm:"type:numeric(30,8);not null"`
	CreatedAt     time.Time
}
