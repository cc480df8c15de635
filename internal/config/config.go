package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"nibblesprice/internal/logger"
)

// VariantBoth registers every provider variant
const VariantBoth = "both"

var knownVariants = []string{"v1", "v2"}

// Config holds all configuration for the NIBBLES price provider host.
type Config struct {
	// Which provider variant(s) to register: v1, v2 or both
	Variant string `mapstructure:"cmc_variant"`

	// Base URL of the CoinMarketCap API (configurable for testing)
	BaseURL string `mapstructure:"cmc_base_url"`

	// Request timeout; zero keeps the transport default
	Timeout time.Duration `mapstructure:"cmc_timeout"`

	LogLevel  string `mapstructure:"log_level"`
	LogPretty bool   `mapstructure:"log_pretty"`

	settings *viper.Viper
}

// Load reads configuration from environment variables, an optional .env file
// and an optional config file. Environment variables take precedence over
// config file values; .env never overrides variables already set.
//
// Expected environment variables:
//   - CMC_VARIANT (optional, v1 | v2 | both, defaults to v1)
//   - CMC_BASE_URL (optional, defaults to production)
//   - CMC_TIMEOUT (optional, e.g. 10s)
//   - LOG_LEVEL (optional, defaults to info)
//   - LOG_PRETTY (optional)
//   - COINMARKETCAP_API_KEY (read by the v1 provider at call time)
//   - CMC_API_KEY (read by the v2 provider at call time)
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("cmc_variant", "v1")
	v.SetDefault("cmc_base_url", "https://pro-api.coinmarketcap.com")
	v.SetDefault("cmc_timeout", time.Duration(0))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.nibblesprice")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables
	v.BindEnv("cmc_variant", "CMC_VARIANT")
	v.BindEnv("cmc_base_url", "CMC_BASE_URL")
	v.BindEnv("cmc_timeout", "CMC_TIMEOUT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_pretty", "LOG_PRETTY")

	// API keys are host settings, looked up by the providers themselves
	v.BindEnv("coinmarketcap_api_key", "COINMARKETCAP_API_KEY")
	v.BindEnv("cmc_api_key", "CMC_API_KEY")

	config := &Config{settings: v}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Variant = strings.ToLower(strings.TrimSpace(config.Variant))
	if _, err := config.VariantNames(); err != nil {
		return nil, err
	}

	if config.Timeout < 0 {
		return nil, fmt.Errorf("invalid configuration: CMC_TIMEOUT must not be negative")
	}

	return config, nil
}

// VariantNames returns the provider variants to register, in order
func (c *Config) VariantNames() ([]string, error) {
	if c.Variant == VariantBoth {
		return append([]string(nil), knownVariants...), nil
	}

	for _, name := range knownVariants {
		if c.Variant == name {
			return []string{name}, nil
		}
	}

	return nil, fmt.Errorf("invalid configuration: CMC_VARIANT must be one of %s or %s, got %q",
		strings.Join(knownVariants, ", "), VariantBoth, c.Variant)
}

// Settings returns the underlying settings store, used as the host runtime's
// settings accessor
func (c *Config) Settings() *viper.Viper {
	return c.settings
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:      c.LogLevel,
		TimeFormat: time.RFC3339,
		Pretty:     c.LogPretty,
	}
}
