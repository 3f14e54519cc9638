// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/weekledger/internal/common"
	"fjacquet/weekledger/internal/config"
	"fjacquet/weekledger/internal/container"
	"fjacquet/weekledger/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Format string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig holds the resolved configuration after PersistentPreRun
	AppConfig *config.Config

	// AppContainer holds the wired application dependencies
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "weekledger",
		Short: "A CLI tool to record personal expenses and review them week by week.",
		Long: `weekledger keeps day-to-day expenses in a local JSON ledger and
shows Monday-to-Sunday summaries with per-category totals.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to weekledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Configuration error: %v", err)
			}
			AppConfig = cfg

			c, err := container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Initialization error: %v", err)
			}
			AppContainer = c
			Log = c.GetLogger()

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
		// Flush newly learned suggestion mappings when ANY command finishes
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to save suggestion mappings")
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific add and suggest command flags
	Description string
	Amount      string
	Category    string
	Date        string
	UseSuggest  bool

	// Specific remove command flags
	ExpenseID string

	// Specific week command flags
	NextWeeks int
	PrevWeeks int

	// Specific import command flags
	InputFile string
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "table", "Output format (table, csv, json, yaml)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
}
