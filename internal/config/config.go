package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for dividendfinder.
type Config struct {
	// Base URL of the upstream provider (configurable for testing)
	BaseURL string `mapstructure:"dividend_base_url"`

	// HTTP adapter
	ListenAddr string `mapstructure:"listen_addr"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Upstream pacing, requests per second. 0 disables the limiter.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Decimals shown for deposit amounts, 0 or 2.
	DepositPrecision int32 `mapstructure:"deposit_precision"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Recognised environment variables, all optional:
//   - DIVIDEND_BASE_URL (defaults to https://www.dividend.com)
//   - LISTEN_ADDR (defaults to :8080)
//   - LOG_LEVEL (debug, info, warn, error; defaults to info)
//   - LOG_FORMAT (text or json; defaults to text)
//   - REQUESTS_PER_SECOND (defaults to 0, unlimited)
//   - DEPOSIT_PRECISION (0 or 2; defaults to 0)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.AutomaticEnv()

	v.SetDefault("dividend_base_url", "https://www.dividend.com")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("requests_per_second", 0)
	v.SetDefault("deposit_precision", 0)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.dividendfinder")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("dividend_base_url", "DIVIDEND_BASE_URL")
	v.BindEnv("listen_addr", "LISTEN_ADDR")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_format", "LOG_FORMAT")
	v.BindEnv("requests_per_second", "REQUESTS_PER_SECOND")
	v.BindEnv("deposit_precision", "DEPOSIT_PRECISION")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var invalid []string
	if strings.TrimSpace(config.BaseURL) == "" {
		invalid = append(invalid, "DIVIDEND_BASE_URL must not be empty")
	}
	if config.DepositPrecision != 0 && config.DepositPrecision != 2 {
		invalid = append(invalid, fmt.Sprintf("DEPOSIT_PRECISION must be 0 or 2, got %d", config.DepositPrecision))
	}
	if config.RequestsPerSecond < 0 {
		invalid = append(invalid, "REQUESTS_PER_SECOND must not be negative")
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}

	return config, nil
}
