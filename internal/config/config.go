// Package config loads application configuration.
// Configuration is layered: built-in defaults, then an optional config
// file, then environment variables prefixed SALESECON_.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"sales-economics/internal/logging"
)

// Config is the top-level application configuration
type Config struct {
	// Server configures the HTTP API
	Server ServerConfig `mapstructure:"server"`

	// Logging configures structured logging
	Logging logging.Config `mapstructure:"logging"`

	// Catalog configures pricing catalog loading
	Catalog CatalogConfig `mapstructure:"catalog"`

	// Output configures CLI result rendering
	Output OutputConfig `mapstructure:"output"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	// Address is the listen address, e.g. ":8080"
	Address string `mapstructure:"address"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds"`
}

// CatalogConfig configures pricing catalog loading
type CatalogConfig struct {
	// Path is an optional HCL catalog override file.
	// Empty means the built-in catalog.
	Path string `mapstructure:"path"`
}

// OutputConfig configures CLI result rendering
type OutputConfig struct {
	// Format is "json" (indented) or "compact" (single line)
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:             ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

// Load reads configuration from the given file path. An empty path
// falls back to a config.yaml search in ./ and ./configs.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("SALESECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills fields an explicit config file left zero
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 30
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
}

func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "json", "compact":
	default:
		return fmt.Errorf("output.format must be json or compact, got %q", cfg.Output.Format)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}

	return nil
}
