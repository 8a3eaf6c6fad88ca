package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/validation"
)

var validateFormatCmd = &cobra.Command{
	Use:   "validate-format <file>",
	Short: "Check a résumé for ATS layout problems",
	Long:  "Reports short content, OCR artifacts, multi-column layouts and low word counts.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateFormat,
}

func init() {
	rootCmd.AddCommand(validateFormatCmd)
}

func runValidateFormat(cmd *cobra.Command, args []string) error {
	doc, err := ingestion.FromFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	warnings := validation.CheckFormat(doc.Text)
	if len(warnings) == 0 {
		fmt.Fprintln(out, "No format issues detected.")
		return nil
	}
	for _, w := range warnings {
		fmt.Fprintf(out, "[%s] %s: %s\n", w.Severity, w.Type, w.Details)
	}
	return nil
}
