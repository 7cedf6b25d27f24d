// Package root contains the root command for the application
package root

import (
	"fmt"

	"hylin/einvoice-csv/internal/config"
	"hylin/einvoice-csv/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// App is the dependency container built once per invocation
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "einvoice-csv",
		Short: "A CLI tool to parse e-invoice carrier CSV exports and compute consumption statistics.",
		Long: `einvoice-csv is a CLI tool that parses electronic invoice CSV exports
(M/D line format), reconciles invoice headers with their line items,
categorizes items by keyword and computes consumption statistics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to einvoice-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			// Bootstrap logger from LOG_LEVEL/LOG_FORMAT so configuration
			// loading itself logs correctly; the full config replaces it
			// below.
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			App, err = container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific stats/export command flags
	Format string

	// Specific categorize command flags
	ItemName string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
}
