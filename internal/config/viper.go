// Package config provides Viper-based hierarchical configuration management
// for the sales pipeline.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Directory    string `mapstructure:"directory" yaml:"directory"`
		EnrichedFile string `mapstructure:"enriched_file" yaml:"enriched_file"`
		ReportFile   string `mapstructure:"report_file" yaml:"report_file"`
	} `mapstructure:"output" yaml:"output"`

	Catalog struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		Limit          int    `mapstructure:"limit" yaml:"limit"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Analysis struct {
		TopProducts  int `mapstructure:"top_products" yaml:"top_products"`
		LowThreshold int `mapstructure:"low_threshold" yaml:"low_threshold"`
	} `mapstructure:"analysis" yaml:"analysis"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional YAML config file, then SALES_-prefixed
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sales-analytics")
	v.AddConfigPath(".sales-analytics")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.delimiter", "|")
	v.SetDefault("input.currency_symbol", "₹")

	v.SetDefault("output.directory", "output")
	v.SetDefault("output.enriched_file", "enriched_sales_data.txt")
	v.SetDefault("output.report_file", "sales_report.txt")

	v.SetDefault("catalog.base_url", "https://dummyjson.com")
	v.SetDefault("catalog.timeout_seconds", 5)
	v.SetDefault("catalog.limit", 100)
	v.SetDefault("catalog.cache_file", "")

	v.SetDefault("analysis.top_products", 5)
	v.SetDefault("analysis.low_threshold", 10)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.Input.Delimiter)) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got: %s", config.Input.Delimiter)
	}

	if config.Catalog.TimeoutSeconds < 1 || config.Catalog.TimeoutSeconds > 300 {
		return fmt.Errorf("catalog.timeout_seconds must be between 1 and 300, got: %d", config.Catalog.TimeoutSeconds)
	}

	if config.Catalog.Limit < 1 {
		return fmt.Errorf("catalog.limit must be positive, got: %d", config.Catalog.Limit)
	}

	if config.Analysis.TopProducts < 1 {
		return fmt.Errorf("analysis.top_products must be positive, got: %d", config.Analysis.TopProducts)
	}

	if config.Analysis.LowThreshold < 0 {
		return fmt.Errorf("analysis.low_threshold must not be negative, got: %d", config.Analysis.LowThreshold)
	}

	return nil
}

// Delimiter returns the configured input delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.Input.Delimiter)[0]
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
