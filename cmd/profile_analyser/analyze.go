package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/db"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/logger"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/observability"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/schemas"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/storage"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Analyze one or more résumés",
	Long: "Extracts information from each résumé, scores it and prints the report. " +
		"Input can be files, --text, a --url or a stored --object.",
	RunE: runAnalyze,
}

var (
	analyzeText           string
	analyzeURL            string
	analyzeObject         string
	analyzeFormat         string
	analyzeOutput         string
	analyzeSave           bool
	analyzeValidateSchema bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Analyze this text instead of a file")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "Fetch and analyze a résumé from a URL")
	analyzeCmd.Flags().StringVar(&analyzeObject, "object", "", "Analyze an object from the configured bucket")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatText, "Output format: text or json")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write output to this file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist reports to the configured database")
	analyzeCmd.Flags().BoolVar(&analyzeValidateSchema, "validate-schema", false, "Check each report against the report JSON Schema")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != formatText && analyzeFormat != formatJSON {
		return fmt.Errorf("invalid format %q: must be %q or %q", analyzeFormat, formatText, formatJSON)
	}
	ctx := cmd.Context()

	docs, err := loadInputs(ctx, args)
	if err != nil {
		return err
	}

	analyzer := pipeline.Default()
	reports := make([]*types.Report, 0, len(docs))
	for _, doc := range docs {
		report := analyzer.Analyze(doc)
		if analyzeValidateSchema {
			if err := schemas.ValidateReport(report); err != nil {
				return fmt.Errorf("report for %s failed schema validation: %w", displayName(doc), err)
			}
		}
		appLogger.Debug("analyzed document",
			append(logger.DocumentFields(doc.Source.FileName, doc.Source.ContentHash), zap.Int("score", report.Score))...)
		reports = append(reports, report)
	}

	if analyzeSave {
		if err := saveReports(ctx, reports); err != nil {
			return err
		}
	}

	return writeOutput(cmd.OutOrStdout(), analyzeOutput, func(w io.Writer) error {
		return renderReports(w, reports, analyzeFormat)
	})
}

// loadInputs gathers a document for each input source. At least one is required.
func loadInputs(ctx context.Context, files []string) ([]ingestion.Document, error) {
	var docs []ingestion.Document
	if analyzeText != "" {
		docs = append(docs, ingestion.FromText(analyzeText))
	}
	if analyzeURL != "" {
		doc, err := ingestion.FromURL(ctx, analyzeURL, ingestion.DefaultFetchOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", analyzeURL, err)
		}
		docs = append(docs, doc)
	}
	if analyzeObject != "" {
		client, err := storage.New(ctx, appConfig.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		doc, err := client.LoadDocument(ctx, analyzeObject)
		if err != nil {
			return nil, fmt.Errorf("failed to load object %s: %w", analyzeObject, err)
		}
		docs = append(docs, doc)
	}
	for _, path := range files {
		doc, err := ingestion.FromFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("nothing to analyze: pass files, --text, --url or --object")
	}
	return docs, nil
}

func saveReports(ctx context.Context, reports []*types.Report) error {
	database, err := db.Connect(ctx, appConfig.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for _, report := range reports {
		id, err := database.SaveReport(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		appLogger.Info("saved report", zap.String(logger.FieldReportID, id.String()))
	}
	return nil
}

func renderReports(w io.Writer, reports []*types.Report, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	printer := observability.NewPrinter(w)
	for _, report := range reports {
		printer.PrintReport(report)
	}
	if len(reports) > 1 {
		printer.PrintComparison(reports)
	}
	return nil
}

// writeOutput renders to path when set, otherwise to stdout.
func writeOutput(stdout io.Writer, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func displayName(doc ingestion.Document) string {
	switch {
	case doc.Source.FileName != "":
		return doc.Source.FileName
	case doc.Source.ObjectKey != "":
		return doc.Source.ObjectKey
	default:
		return "input"
	}
}
