package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Provider credentials and the home
// currency are loaded once at startup and read-only thereafter.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Currency provider (FreeCurrency API)
	CurrencyAPIKey string
	CurrencyAPIURL string
	HomeCurrency   string // Fixed target currency for all conversions

	// Weather provider (OpenWeather API)
	WeatherAPIKey string
	WeatherAPIURL string
	WeatherUnits  string // Temperature units requested from the provider

	// ProviderTimeout bounds each outbound provider call.
	ProviderTimeout time.Duration

	// RateLimit is the inbound API rate limit in ulule/limiter format (e.g., "100-M").
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Missing provider credentials are a startup-time failure: the
// enrichment flow cannot function without them.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FREECURRENCY_API_KEY", "")
	viper.SetDefault("FREECURRENCY_API_URL", "https://api.freecurrencyapi.com/v1/latest")
	viper.SetDefault("HOME_CURRENCY", "USD")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather")
	viper.SetDefault("OPENWEATHER_UNITS", "metric")
	viper.SetDefault("PROVIDER_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable not set")
	}

	cfg.CurrencyAPIKey = viper.GetString("FREECURRENCY_API_KEY")
	if cfg.CurrencyAPIKey == "" {
		return nil, fmt.Errorf("FREECURRENCY_API_KEY environment variable not set")
	}

	cfg.WeatherAPIKey = viper.GetString("OPENWEATHER_API_KEY")
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY environment variable not set")
	}

	cfg.HomeCurrency = viper.GetString("HOME_CURRENCY")
	if len(cfg.HomeCurrency) != 3 {
		return nil, fmt.Errorf("HOME_CURRENCY must be a 3-letter currency code, got %q", cfg.HomeCurrency)
	}

	timeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	providerTimeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		providerTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, providerTimeout)
	}
	cfg.ProviderTimeout = providerTimeout

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CurrencyAPIURL = viper.GetString("FREECURRENCY_API_URL")
	cfg.WeatherAPIURL = viper.GetString("OPENWEATHER_API_URL")
	cfg.WeatherUnits = viper.GetString("OPENWEATHER_UNITS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
