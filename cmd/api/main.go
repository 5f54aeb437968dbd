package main

import (
	"time"

	"tugasku/configs"
	"tugasku/internal/api"
	"tugasku/internal/api/handlers"
	"tugasku/internal/middleware"
	"tugasku/internal/repository"
	"tugasku/internal/session"
	"tugasku/pkg/crypto"
	"tugasku/pkg/database"
	"tugasku/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()

	db := database.ConnectDB(cfg.DatabaseURL)
	defer db.Close()
	logger.SystemLogger.Info("Database connected")

	repository.CreateTableIfNotExists(db)

	redisClient := database.ConnectRedis(cfg.RedisAddr)
	defer redisClient.Close()
	logger.SystemLogger.Info("Redis connected")

	store := session.NewStore(redisClient)
	h := handlers.New(db, store)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: crypto.CookieKey(cfg.SessionSecret),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	api.RegisterRoutes(app, h, store)
	api.RegisterPages(app)

	logger.SystemLogger.Info("Application ready", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
