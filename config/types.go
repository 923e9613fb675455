package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds scripture API connection details
type APIConfig struct {
	URL       string        `mapstructure:"url"`
	Key       string        `mapstructure:"key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	// Format is auto, json or table. auto prints tables to a terminal and
	// JSON everywhere else.
	Format      string `mapstructure:"format"`
	ContentType string `mapstructure:"content_type"`
	Concurrency int    `mapstructure:"concurrency"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
