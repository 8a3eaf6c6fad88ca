// Package main provides the profile_analyser command line: résumé analysis,
// the HTTP API and the queue worker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/config"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/logger"
)

var (
	configPath string
	jsonLogs   bool
	debugLogs  bool

	// Populated by loadRuntime before any subcommand runs.
	appConfig *config.Config
	appLogger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "profile_analyser",
	Short: "Résumé extraction, ATS scoring and format validation",
	Long: "profile_analyser extracts structured information from résumés (PDF, DOCX, HTML or text), " +
		"scores them for ATS compatibility, and reports strengths, weaknesses and field-specific recommendations.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
}

// loadRuntime reads the configuration and builds the logger. Command-line
// flags take precedence over the file and environment.
func loadRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Log.JSON = jsonLogs
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = debugLogs
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appConfig = cfg
	appLogger = log
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = appLogger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
