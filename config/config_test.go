package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			URL: "https://api.scripture.api.bible/v1",
			Key: "valid-api-key",
		},
		Output: OutputConfig{
			Format:      "auto",
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing key",
			mutate:  func(c *Config) { c.API.Key = "" },
			wantErr: "api.key must be set",
		},
		{
			name:    "placeholder key",
			mutate:  func(c *Config) { c.API.Key = "your-api-key-here" },
			wantErr: "api.key must be set",
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.API.URL = "" },
			wantErr: "api.url is required",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format: xml",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Output.Concurrency = 0 },
			wantErr: "output.concurrency",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  key: file-key
  timeout: 5s
output:
  format: json
filter:
  presets:
    english: 'language.id == "eng"'
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://api.scripture.api.bible/v1", cfg.API.URL)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "json", cfg.Output.ContentType)
	assert.Equal(t, 4, cfg.Output.Concurrency)
	assert.Equal(t, `language.id == "eng"`, cfg.Filter.Presets["english"])
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SCRIPTURE_API_KEY", "env-key")
	t.Setenv("SCRIPTURE_API_URL", "http://localhost:8080/v1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, "http://localhost:8080/v1", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  key: file-key\n"), 0o600))
	t.Setenv("SCRIPTURE_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}
