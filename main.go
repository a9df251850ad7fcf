// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sportconnect-api/config"
	"sportconnect-api/database"
	"sportconnect-api/middleware"
	"sportconnect-api/pkg/logger"
	"sportconnect-api/routes"
	"sportconnect-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", err)
	}

	// Seed database with test data (development only)
	if cfg.AppEnv == "development" {
		if err := database.SeedData(db); err != nil {
			logger.Warn("Failed to seed database", "error", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.AppEnv == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Middleware
	router.Use(middleware.SetupCORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(300, 50))
	router.Use(gin.Recovery())

	// Email service for welcome emails
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	logger.Info("Starting SportConnect API server", "port", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}
