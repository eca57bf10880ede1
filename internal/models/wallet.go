package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitialBalanceBTC is deposited into every freshly created wallet.
var InitialBalanceBTC = decimal.NewFromInt(1)

// MaxWalletsPerUser limits how many wallets a single user may own.
const MaxWalletsPerUser = 3

type Wallet struct {
	ID         uint            `gorm:"primarykey" json:"-"`
	Address    string          `gorm:"uniqueIndex;not null" json:"address"`
	UserAPIKey string          `gorm:"index;not null" json:"-"`
	Balance    decimal.Decimal `gorm:"type:numeric(30,8);not null" json:"balance_btc"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"-"`
}
