package main

import (
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/queue"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <object-key>...",
	Short: "Queue stored résumés for analysis by the worker",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnqueue,
}

func init() {
	rootCmd.AddCommand(enqueueCmd)
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	if appConfig.Queue.URL == "" {
		return fmt.Errorf("queue.url is required (PROFILE_QUEUE_URL)")
	}
	broker, err := queue.Dial(appConfig.Queue.URL)
	if err != nil {
		return err
	}
	defer broker.Close()

	for _, key := range args {
		job := queue.Job{ID: uuid.NewString(), ObjectKey: key, FileName: path.Base(key)}
		if err := broker.Enqueue(cmd.Context(), appConfig.Queue.Queue, job); err != nil {
			return fmt.Errorf("failed to enqueue %s: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", job.ID, key)
	}
	return nil
}
