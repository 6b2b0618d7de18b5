package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Price source names accepted in PRICE_SOURCE.
const (
	PriceSourceLive      = "live"
	PriceSourceSimulated = "simulated"
)

// Config holds application configuration
type Config struct {
	Port     int
	DevMode  bool
	LogLevel string

	// Price oracle
	PriceSource     string        // live or simulated
	CoinGeckoURL    string
	CoinGeckoAPIKey string
	PriceCacheTTL   time.Duration // 0 disables price caching

	// AI insight
	DeepSeekAPIKey string
	DeepSeekURL    string
	DeepSeekModel  string

	// Recommendation policy when a risk filter matches nothing: all or none
	RecommendFallback string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("GO_PORT", 8080),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PriceSource:       getEnv("PRICE_SOURCE", PriceSourceSimulated),
		CoinGeckoURL:      getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:   getEnv("COINGECKO_API_KEY", ""),
		PriceCacheTTL:     getEnvAsDuration("PRICE_CACHE_TTL", time.Minute),
		DeepSeekAPIKey:    getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekURL:       getEnv("DEEPSEEK_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:     getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		RecommendFallback: getEnv("RECOMMEND_FALLBACK", "all"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.PriceSource != PriceSourceLive && c.PriceSource != PriceSourceSimulated {
		return fmt.Errorf("PRICE_SOURCE must be %q or %q, got %q",
			PriceSourceLive, PriceSourceSimulated, c.PriceSource)
	}

	if c.RecommendFallback != "all" && c.RecommendFallback != "none" {
		return fmt.Errorf("RECOMMEND_FALLBACK must be \"all\" or \"none\", got %q", c.RecommendFallback)
	}

	// Note: DEEPSEEK_API_KEY is optional - the insight service reports a
	// fixed "API key not configured" answer when it is absent.

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
