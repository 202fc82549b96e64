// Package root contains the root command for the application
package root

import (
	"sales-analytics/internal/common"
	"sales-analytics/internal/config"
	"sales-analytics/internal/logging"
	"sales-analytics/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded in PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-analytics",
		Short: "A CLI tool to analyze delimited sales-transaction files.",
		Long: `sales-analytics ingests a delimited sales-transaction file, validates and
cleans the records, computes aggregate business metrics, enriches records via
a product catalog lookup, and emits a text report plus an enriched data file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sales-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger and delimiter to the writer packages
			common.SetLogger(Log)
			store.SetLogger(Log)
			common.SetDelimiter(cfg.Delimiter())
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input sales data file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory (default from configuration)")
}

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
