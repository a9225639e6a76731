// Package config loads application configuration from file and environment
// and constructs the logger.
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Quote   QuoteConfig   `yaml:"quote" mapstructure:"quote"`
	Finance FinanceConfig `yaml:"finance" mapstructure:"finance"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port            int `yaml:"port" mapstructure:"port"`
	ShutdownTimeout int `yaml:"shutdown_timeout_secs" mapstructure:"shutdown_timeout_secs"`
}

// QuoteConfig configures the external quote service client. An empty APIKey
// disables the live path entirely; the engine then runs estimate-only.
type QuoteConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// Timeout returns the quote timeout as a duration.
func (q QuoteConfig) Timeout() time.Duration {
	return time.Duration(q.TimeoutSecs) * time.Second
}

// FinanceConfig configures the financial model.
type FinanceConfig struct {
	AssumptionsPath string `yaml:"assumptions_path" mapstructure:"assumptions_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from an optional config.yaml in the working
// directory, overridden by BESS_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout_secs", 10)
	v.SetDefault("quote.base_url", "https://quotes.voltgrid.io")
	v.SetDefault("quote.timeout_secs", 5)
	v.SetDefault("quote.rate_per_sec", 5.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// NewLogger builds a zerolog logger from log configuration. Unknown levels
// fall back to info rather than failing startup.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
