package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SCRIPTURE_API_KEY
const EnvPrefix = "SCRIPTURE"

// Load loads the configuration from file and environment. A missing config
// file is fine as long as the environment supplies the API key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".scripture"))
		}

		// Check /etc
		v.AddConfigPath("/etc/scripture/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a
// default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.url", "https://api.scripture.api.bible/v1")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.user_agent", "")

	// Output defaults
	v.SetDefault("output.format", "auto")
	v.SetDefault("output.content_type", "json")
	v.SetDefault("output.concurrency", 4)

	v.SetDefault("filter.presets", map[string]string{})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}

	if cfg.API.Key == "" || cfg.API.Key == "your-api-key-here" {
		return fmt.Errorf("api.key must be set to a valid API key (or export %s_API_KEY)", EnvPrefix)
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	// Validate output format
	validOutputs := map[string]bool{
		"auto":  true,
		"json":  true,
		"table": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'auto', 'json' or 'table')", cfg.Output.Format)
	}

	if cfg.Output.Concurrency < 1 {
		return fmt.Errorf("output.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
