package pipeline

import (
	"coinkeep/internal/repositories"
)

// ChainSet assembles the operation chains. All collaborators are
// injected explicitly at construction; there are no shared default
// chains.
type ChainSet struct {
	users        repositories.UserRepository
	wallets      repositories.WalletRepository
	transactions repositories.TransactionRepository
	platform     repositories.PlatformRepository
	rates        RateConverter
	adminKey     string
}

func NewChainSet(
	users repositories.UserRepository,
	wallets repositories.WalletRepository,
	transactions repositories.TransactionRepository,
	platform repositories.PlatformRepository,
	rates RateConverter,
	adminKey string,
) *ChainSet {
	if users == nil {
		panic("user repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if transactions == nil {
		panic("transaction repository is required")
	}
	if platform == nil {
		panic("platform repository is required")
	}
	if rates == nil {
		panic("rate converter is required")
	}

	return &ChainSet{
		users:        users,
		wallets:      wallets,
		transactions: transactions,
		platform:     platform,
		rates:        rates,
		adminKey:     adminKey,
	}
}

// AddWallet validates the caller, enforces the wallet cap, creates the
// wallet and resolves its USD value.
func (c *ChainSet) AddWallet() *Chain {
	return NewChain(
		ValidateAPIKey{Users: c.users},
		CheckWalletLimit{Wallets: c.wallets},
		RegisterWallet{Wallets: c.wallets},
		LoadWallet{Wallets: c.wallets},
		FetchExchangeRate{Rates: c.rates},
	)
}

// FetchWallet loads a wallet the caller owns and resolves its USD
// value.
func (c *ChainSet) FetchWallet() *Chain {
	return NewChain(
		ValidateAPIKey{Users: c.users},
		LoadWallet{Wallets: c.wallets},
		CheckOwnership{Wallets: c.wallets},
		FetchExchangeRate{Rates: c.rates},
	)
}

// CreateTransaction validates both wallets, prices the transfer and
// executes it atomically.
func (c *ChainSet) CreateTransaction() *Chain {
	return NewChain(
		ValidateAPIKey{Users: c.users},
		LoadTransactionWallets{Wallets: c.wallets},
		ComputeFee{Wallets: c.wallets},
		CheckBalance{},
		ExecuteTransfer{Wallets: c.wallets},
	)
}

// UserTransactions collects every transfer sent from any of the
// caller's wallets.
func (c *ChainSet) UserTransactions() *Chain {
	return NewChain(
		ValidateAPIKey{Users: c.users},
		CollectWalletAddresses{Wallets: c.wallets},
		CollectWithdrawals{Transactions: c.transactions},
	)
}

// WalletTransactions collects deposits and withdrawals for a single
// wallet; the request is seeded with that wallet's address.
func (c *ChainSet) WalletTransactions() *Chain {
	return NewChain(
		ValidateAPIKey{Users: c.users},
		CollectDeposits{Transactions: c.transactions},
		CollectWithdrawals{Transactions: c.transactions},
	)
}

// Statistics aggregates platform totals for the admin key.
func (c *ChainSet) Statistics() *Chain {
	return NewChain(
		RequireAdmin{AdminKey: c.adminKey},
		CollectStatistics{Transactions: c.transactions, Platform: c.platform},
	)
}
