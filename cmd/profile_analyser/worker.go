package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/queue"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/storage"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analysis jobs from the message queue",
	Long: `Reads jobs naming stored résumé objects from the queue, analyzes each one,
stores the report and publishes status updates to the updates exchange.`,
	RunE: runWorker,
}

var workerCount int

func init() {
	workerCmd.Flags().IntVarP(&workerCount, "workers", "w", 0, "Concurrent consumers (default from config)")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	if appConfig.Queue.URL == "" {
		return fmt.Errorf("queue.url is required (PROFILE_QUEUE_URL)")
	}
	if !appConfig.StorageEnabled() {
		return fmt.Errorf("storage bucket and credentials are required")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n := workerCount
	if n <= 0 {
		n = appConfig.Queue.Workers
	}

	objects, err := storage.New(ctx, appConfig.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	database, err := connectOptional(ctx)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	broker, err := queue.Dial(appConfig.Queue.URL)
	if err != nil {
		return err
	}
	defer broker.Close()

	publisher, err := broker.NewPublisher(appConfig.Queue.Exchange)
	if err != nil {
		return err
	}
	defer publisher.Close()

	opts := queue.WorkerOptions{
		Analyzer:  pipeline.Default(),
		Loader:    objects.LoadDocument,
		Publisher: publisher,
		Logger:    appLogger,
	}
	if database != nil {
		opts.Store = database
	}
	worker, err := queue.NewWorker(opts)
	if err != nil {
		return err
	}

	deliveries, err := broker.Consume(appConfig.Queue.Queue, n)
	if err != nil {
		return err
	}

	appLogger.Info("worker started",
		zap.String("queue", appConfig.Queue.Queue),
		zap.String("bucket", objects.Bucket()),
		zap.Int("workers", n))
	worker.Run(ctx, deliveries, n)
	appLogger.Info("worker stopped")
	return nil
}
