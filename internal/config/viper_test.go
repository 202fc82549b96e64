package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so no stray config file interferes.
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(origDir) }()

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "|", cfg.Input.Delimiter)
	assert.Equal(t, '|', cfg.Delimiter())
	assert.Equal(t, "₹", cfg.Input.CurrencySymbol)
	assert.Equal(t, "https://dummyjson.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 5, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, 100, cfg.Catalog.Limit)
	assert.Equal(t, 5, cfg.Analysis.TopProducts)
	assert.Equal(t, 10, cfg.Analysis.LowThreshold)
	assert.Equal(t, "output", cfg.Output.Directory)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Input.Delimiter = "|"
		cfg.Catalog.TimeoutSeconds = 5
		cfg.Catalog.Limit = 100
		cfg.Analysis.TopProducts = 5
		cfg.Analysis.LowThreshold = 10
		return cfg
	}

	assert.NoError(t, validateConfig(base()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.Input.Delimiter = "||" }},
		{"empty delimiter", func(c *Config) { c.Input.Delimiter = "" }},
		{"zero timeout", func(c *Config) { c.Catalog.TimeoutSeconds = 0 }},
		{"zero catalog limit", func(c *Config) { c.Catalog.Limit = 0 }},
		{"zero top products", func(c *Config) { c.Analysis.TopProducts = 0 }},
		{"negative threshold", func(c *Config) { c.Analysis.LowThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestDelimiter_MultiByte(t *testing.T) {
	cfg := &Config{}
	cfg.Input.Delimiter = "§"
	assert.Equal(t, '§', cfg.Delimiter())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SALES_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SALES_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SALES_TEST_MISSING", "fallback"))
}
