// Package routes wires repositories, chains, services and handlers
// together and registers the HTTP routes.
package routes

import (
	"coinkeep/internal/config"
	"coinkeep/internal/handlers"
	"coinkeep/internal/middleware"
	"coinkeep/internal/pipeline"
	"coinkeep/internal/repositories"
	"coinkeep/internal/repositories/cache"
	"coinkeep/internal/repositories/memory"
	"coinkeep/internal/services/rates"
	"coinkeep/internal/services/stats"
	"coinkeep/internal/services/transaction"
	"coinkeep/internal/services/user"
	"coinkeep/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. Passing a nil db
// selects the in-memory backend; a nil cache service disables rate
// caching.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.CacheService) {
	var (
		userRepo     repositories.UserRepository
		walletRepo   repositories.WalletRepository
		txRepo       repositories.TransactionRepository
		platformRepo repositories.PlatformRepository
	)
	if db != nil {
		userRepo = repositories.NewUserRepository(db)
		walletRepo = repositories.NewWalletRepository(db)
		txRepo = repositories.NewTransactionRepository(db)
		platformRepo = repositories.NewPlatformRepository(db)
	} else {
		store := memory.NewStore()
		userRepo = store.Users()
		walletRepo = store.Wallets()
		txRepo = store.Transactions()
		platformRepo = store.Platform()
	}

	var converter pipeline.RateConverter = rates.NewCoinConvertClient()
	if cacheSvc != nil {
		converter = rates.NewCachedConverter(converter, cacheSvc, rates.DefaultRateTTL)
	}

	chains := pipeline.NewChainSet(userRepo, walletRepo, txRepo, platformRepo, converter, config.AdminKey())

	jwtSecret := config.GetEnv("JWT_SECRET", "coinkeep")
	userService := user.NewService(userRepo, jwtSecret)
	walletService := wallet.NewService(chains)
	transactionService := transaction.NewService(chains)
	statsService := stats.NewService(chains)

	userHandler := handlers.NewUserHandler(userService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	statisticsHandler := handlers.NewStatisticsHandler(statsService)

	auth := middleware.NewAPIKeyAuth(jwtSecret)

	api := app.Group("/api")
	api.Post("/users", userHandler.Register)
	api.Post("/auth/login", userHandler.Login)

	protected := api.Group("", auth.Handler)
	protected.Post("/wallets", walletHandler.CreateWallet)
	protected.Get("/wallets/:address", walletHandler.GetWallet)
	protected.Get("/wallets/:address/transactions", transactionHandler.ListWalletTransactions)
	protected.Post("/transactions", transactionHandler.CreateTransaction)
	protected.Get("/transactions", transactionHandler.ListUserTransactions)
	protected.Get("/statistics", statisticsHandler.GetStatistics)
}
