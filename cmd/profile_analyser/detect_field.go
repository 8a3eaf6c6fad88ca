package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
)

var detectFieldCmd = &cobra.Command{
	Use:   "detect-field <file>",
	Short: "Print the professional field of a résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetectField,
}

func init() {
	rootCmd.AddCommand(detectFieldCmd)
}

func runDetectField(cmd *cobra.Command, args []string) error {
	doc, err := ingestion.FromFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	detection := pipeline.Default().DetectField(doc)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Field: %s\n", detection.Field)
	fmt.Fprintf(out, "Field from skills: %s\n", detection.SkillsField)
	if len(detection.Skills) > 0 {
		fmt.Fprintf(out, "Skills: %s\n", strings.Join(detection.Skills, ", "))
	}
	return nil
}
