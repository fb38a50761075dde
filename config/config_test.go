package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("MARKET_RETENTION_MINUTES")
	_ = os.Unsetenv("MARKET_CATALOG")
	_ = os.Unsetenv("MARKET_TRADES_DIR")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Market.RetentionMinutes != 15 || AppConfig.Market.CatalogPath != "./data/catalog.csv" || AppConfig.Market.TradesDir != "./data/trades" {
		t.Fatalf("unexpected defaults: %+v", AppConfig.Market)
	}
	if AppConfig.Market.Retention() != 15*time.Minute {
		t.Fatalf("expected 15m retention, got %v", AppConfig.Market.Retention())
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("MARKET_RETENTION_MINUTES", "30")
	t.Cleanup(func() { LoadConfig() })

	LoadConfig()
	if AppConfig.Market.RetentionMinutes != 30 {
		t.Fatalf("expected retention override 30, got %d", AppConfig.Market.RetentionMinutes)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
