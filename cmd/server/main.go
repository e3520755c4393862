package main

import (
	"log" // log package is needed for logging

	"prd_manager/internal/api"     // API handlers and router
	"prd_manager/internal/config"  // Configuration
	"prd_manager/internal/db"      // Database helpers
	"prd_manager/internal/service" // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Construct services once and hand them to the router
	authService := service.NewAuthService(gormDB, cfg.JWTSecret)
	categoryService := service.NewCategoryService(gormDB)
	featureService := service.NewFeatureService(gormDB)

	r := api.Router(authService, categoryService, featureService, cfg.JWTSecret)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
