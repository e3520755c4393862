package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBDriver   string // "sqlite" (default) or "mysql"
	DBPath     string // SQLite database file path
	DBUser     string // Database user (mysql)
	DBPassword string // Database password (mysql)
	DBHost     string // Database host (mysql)
	DBPort     string // Database port (mysql)
	DBName     string // Database name (mysql)
	JWTSecret  string // JWT secret key
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables.
// Defaults mirror the development setup: SQLite file DB on port 5000.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBPath:     os.Getenv("DB_PATH"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "5000"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "prd_manager_dev.db"
	}
	return cfg
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return c.DBPath
}
