package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Env                 string
	BaseCurrency        string
	RateAPIURL          string
	RateAPIKey          string
	RateRefreshInterval time.Duration
}

// LoadConfig reads .env file and returns a Config struct
func LoadConfig() *Config {
	// Try loading .env file (it might not exist in Production, which is fine)
	err := godotenv.Load()
	if err != nil {
		// We use Warn because it's not a crash, but it's worth noting
		slog.Warn("No .env file found, relying on System Env Variables")
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		BaseCurrency:        getEnv("BASE_CURRENCY", "USD"),
		RateAPIURL:          getEnv("EXCHANGE_RATE_URL", "https://v6.exchangerate-api.com/v6"),
		RateAPIKey:          getEnv("EXCHANGE_RATE_API_KEY", ""),
		RateRefreshInterval: getDuration("RATE_REFRESH_INTERVAL", 24*time.Hour),
	}
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in env, using default", "key", key, "value", value)
		return fallback
	}
	return d
}
