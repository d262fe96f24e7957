package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	StoreDriver    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	RunMigrations  bool
	SeedDemoData   bool

	// Ledger rules
	DepositClientsOnly      bool
	BestClientsDefaultLimit int
	BestClientsMaxLimit     int

	// Edge
	RateLimit          string
	RedisURL           string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
	ShutdownTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("DEPOSIT_CLIENTS_ONLY", false)
	viper.SetDefault("BEST_CLIENTS_DEFAULT_LIMIT", 2)
	viper.SetDefault("BEST_CLIENTS_MAX_LIMIT", 100)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Actual environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:             viper.GetString("PGSQL_URL"),
		StoreDriver:             strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
		Port:                    viper.GetString("PORT"),
		IsProduction:            viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:          viper.GetString("MIGRATIONS_PATH"),
		RunMigrations:           viper.GetBool("RUN_MIGRATIONS"),
		SeedDemoData:            viper.GetBool("SEED_DEMO_DATA"),
		DepositClientsOnly:      viper.GetBool("DEPOSIT_CLIENTS_ONLY"),
		BestClientsDefaultLimit: viper.GetInt("BEST_CLIENTS_DEFAULT_LIMIT"),
		BestClientsMaxLimit:     viper.GetInt("BEST_CLIENTS_MAX_LIMIT"),
		RateLimit:               viper.GetString("RATE_LIMIT"),
		RedisURL:                viper.GetString("REDIS_URL"),
		CORSAllowedOrigins:      splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:           viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:         viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", shutdownStr, err)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("PGSQL_URL is required when STORE_DRIVER is postgres")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q, expected %s or %s", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}
	if c.BestClientsDefaultLimit < 1 {
		return fmt.Errorf("BEST_CLIENTS_DEFAULT_LIMIT must be positive, got %d", c.BestClientsDefaultLimit)
	}
	if c.BestClientsMaxLimit < c.BestClientsDefaultLimit {
		return fmt.Errorf("BEST_CLIENTS_MAX_LIMIT (%d) must not be below BEST_CLIENTS_DEFAULT_LIMIT (%d)", c.BestClientsMaxLimit, c.BestClientsDefaultLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
