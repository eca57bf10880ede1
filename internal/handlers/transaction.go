package handlers

import (
	"coinkeep/internal/middleware"
	"coinkeep/internal/services/transaction"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction transfers BTC between two wallets.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)

	var input struct {
		SenderAddress    string          `json:"sender_address"`
		RecipientAddress string          `json:"recipient_address"`
		AmountBTC        decimal.Decimal `json:"amount_btc"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	txn, err := h.transactionService.CreateTransaction(
		c.Context(), input.SenderAddress, input.RecipientAddress, input.AmountBTC, apiKey)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Created(c, fiber.Map{"transaction": txn})
}

// ListUserTransactions lists the transfers sent from any of the
// caller's wallets.
func (h *TransactionHandler) ListUserTransactions(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)

	txns, err := h.transactionService.UserTransactions(c.Context(), apiKey)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.Map{"transactions": txns})
}

// ListWalletTransactions lists deposits and withdrawals for one wallet.
func (h *TransactionHandler) ListWalletTransactions(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)
	address := c.Params("address")

	txns, err := h.transactionService.WalletTransactions(c.Context(), apiKey, address)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.Map{"transactions": txns})
}
