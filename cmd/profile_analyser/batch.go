package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/observability"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every résumé in a directory and compare them",
	Long: "Analyzes each supported file (pdf, docx, html, txt, md) in a directory concurrently " +
		"and prints the results ranked by score.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchConcurrency int
	batchOutDir      string
)

func init() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Documents analyzed at once (default from config)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Write one JSON report per document to this directory")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := supportedFiles(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported résumé files in %s", args[0])
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = appConfig.Analysis.Concurrency
	}
	results, err := pipeline.Default().RunBatch(cmd.Context(), paths, pipeline.BatchOptions{
		Concurrency: concurrency,
		Logger:      appLogger,
		OnProgress: func(event pipeline.ProgressEvent) {
			appLogger.Debug(event.Message, zap.String("step", event.Step))
		},
	})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stderr, "skipped %s: %v\n", res.Path, res.Err)
		}
	}

	ranked := pipeline.Ranked(results)
	if len(ranked) == 0 {
		return fmt.Errorf("no résumé in %s could be analyzed", args[0])
	}
	reports := make([]*types.Report, len(ranked))
	for i, res := range ranked {
		reports[i] = res.Report
	}

	if batchOutDir != "" {
		if err := writeReports(batchOutDir, ranked); err != nil {
			return err
		}
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintComparison(reports)
	return nil
}

// supportedFiles lists the analyzable files directly inside dir, sorted by name.
func supportedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !ingestion.SupportedExtension(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func writeReports(dir string, results []pipeline.BatchResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, res := range results {
		data, err := json.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report for %s: %w", res.Path, err)
		}
		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		if err := os.WriteFile(filepath.Join(dir, base+".json"), data, 0o644); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", res.Path, err)
		}
	}
	return nil
}
