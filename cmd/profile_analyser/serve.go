package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/db"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes résumé analysis over REST. Reports are
persisted when a database URL is configured.`,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := server.OptionsFromConfig(appConfig)
	if err != nil {
		return err
	}
	if servePort > 0 {
		opts.Port = servePort
	}
	opts.Analyzer = pipeline.Default()
	opts.Logger = appLogger

	database, err := connectOptional(ctx)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
		opts.Store = database
	}

	return server.New(opts).Start(ctx)
}

// connectOptional connects to the database when one is configured.
func connectOptional(ctx context.Context) (*db.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, nil
	}
	database, err := db.Connect(ctx, appConfig.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}
