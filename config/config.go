package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the market registry parameters.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	MARKET_RETENTION_MINUTES=15
//	MARKET_CATALOG=./data/catalog.csv
//	MARKET_TRADES_DIR=./data/trades
type Config struct {
	Server ServerConfig // HTTP server configuration
	Market MarketConfig // Stock market registry settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MarketConfig defines the market registry parameters.
//
// Fields:
//   - RetentionMinutes: how many minutes a recorded trade stays visible to
//     aggregate queries before it is pruned.
//   - CatalogPath: path to the semicolon-CSV stock catalog loaded on startup.
//   - TradesDir: directory of trade CSV files consumed by replay mode.
type MarketConfig struct {
	RetentionMinutes int
	CatalogPath      string
	TradesDir        string
}

// Retention returns the configured trade retention window as a duration.
func (m MarketConfig) Retention() time.Duration {
	return time.Duration(m.RetentionMinutes) * time.Minute
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("MARKET_RETENTION_MINUTES", 15)
	viper.SetDefault("MARKET_CATALOG", "./data/catalog.csv")
	viper.SetDefault("MARKET_TRADES_DIR", "./data/trades")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Market: MarketConfig{
			RetentionMinutes: viper.GetInt("MARKET_RETENTION_MINUTES"),
			CatalogPath:      viper.GetString("MARKET_CATALOG"),
			TradesDir:        viper.GetString("MARKET_TRADES_DIR"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Market.RetentionMinutes <= 0 {
		missing = append(missing, "MARKET_RETENTION_MINUTES")
	}
	if AppConfig.Market.CatalogPath == "" {
		missing = append(missing, "MARKET_CATALOG")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
