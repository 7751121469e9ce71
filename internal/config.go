package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	Catalog  CatalogConfig
	Redis    RedisConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

// CatalogConfig points at the remote product catalog API.
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds the connection settings for the local cart store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       uint16
}

// CartConfig holds cart persistence settings.
// StorageKey is the single well-known key the serialized cart lives under.
type CartConfig struct {
	StorageKey string
}

// CheckoutConfig tunes the simulated payment flow.
type CheckoutConfig struct {
	ProcessingDelay time.Duration
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_BASE_URL", "https://dummyjson.com"),
			Timeout: getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cart: CartConfig{
			StorageKey: getEnv("CART_STORAGE_KEY", "cart"),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getEnvDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL must not be empty")
	}
	if cfg.Cart.StorageKey == "" {
		return nil, fmt.Errorf("CART_STORAGE_KEY must not be empty")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
