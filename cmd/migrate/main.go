package main

import (
	"prd_manager/internal/config" // Custom import path (Config)
	"prd_manager/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
}
