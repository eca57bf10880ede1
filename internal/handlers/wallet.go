package handlers

import (
	"coinkeep/internal/middleware"
	"coinkeep/internal/services/wallet"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// CreateWallet opens a new wallet for the caller, funded with the
// initial deposit.
func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)

	view, err := h.walletService.AddWallet(c.Context(), apiKey)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"address":     view.Wallet.Address,
		"balance_btc": view.Wallet.Balance,
		"balance_usd": view.BalanceUSD,
	})
}

// GetWallet returns one of the caller's wallets with its USD value.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)
	address := c.Params("address")

	view, err := h.walletService.FetchWallet(c.Context(), apiKey, address)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"address":     view.Wallet.Address,
		"balance_btc": view.Wallet.Balance,
		"balance_usd": view.BalanceUSD,
	})
}
