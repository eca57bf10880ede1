// Package main is the entry point for the API server. It loads
// configuration, initializes the selected storage backend plus Redis,
// and starts the HTTP server.
package main

import (
	"log"
	"time"

	"coinkeep/internal/config"
	"coinkeep/internal/repositories"
	"coinkeep/internal/repositories/cache"
	"coinkeep/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	var db *gorm.DB
	if config.StorageBackend() == "postgres" {
		var err error
		db, err = repositories.InitDB()
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("failed to get database instance: %v", err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}()

		// Periodic connection pool stats
		go func() {
			ticker := time.NewTicker(1 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				stats := sqlDB.Stats()
				log.Printf("DB stats: open=%d idle=%d inUse=%d waitCount=%d waitDuration=%s",
					stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
			}
		}()
	} else {
		log.Println("using in-memory storage backend")
	}

	var cacheService *cache.CacheService
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cacheService = cache.NewCacheService(redisClient, 24*time.Hour)
		defer func() {
			if err := cacheService.Close(); err != nil {
				log.Printf("failed to close Redis connection: %v", err)
			}
		}()
	} else {
		log.Println("REDIS_HOST not set, rate caching disabled")
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/users", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
	}))

	routes.SetupRoutes(app, db, cacheService)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
