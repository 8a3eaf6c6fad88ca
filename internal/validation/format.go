// Package validation checks extracted résumé text for layout and extraction problems.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const (
	minContentLength  = 500
	maxSymbolFraction = 0.1
	minWordCount      = 100

	severityWarning = "warning"
)

// allowedPunctuation are the non-alphanumeric characters expected in plain résumé text.
const allowedPunctuation = ".,-+@#$%()[]{}:;?!"

var multiColumnIndicators = []string{"|", "  ", "\t\t"}

// CheckFormat returns the warnings for text in a fixed order: short content,
// unusual symbols, multi-column layout, then too few words.
func CheckFormat(text string) []types.FormatWarning {
	var warnings []types.FormatWarning
	add := func(kind, details string) {
		warnings = append(warnings, types.FormatWarning{Type: kind, Severity: severityWarning, Details: details})
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minContentLength {
		add(types.WarningShortContent,
			"Very short content detected. This might be a scanned PDF or image-based resume.")
	}
	if float64(countUnusualSymbols(text)) > float64(utf8.RuneCountInString(text))*maxSymbolFraction {
		add(types.WarningOCRArtifacts,
			"Many unusual symbols detected. This might be a scanned PDF with poor OCR.")
	}
	for _, indicator := range multiColumnIndicators {
		if strings.Contains(text, indicator) {
			add(types.WarningMultiColumn,
				"Multi-column layout detected. Consider using a single-column format for better ATS compatibility.")
			break
		}
	}
	if len(strings.Fields(text)) < minWordCount {
		add(types.WarningFewWords,
			"Very few words detected. This might be an image-heavy resume.")
	}
	return warnings
}

// ValidateResumeFormat returns the human-readable warning messages for text.
func ValidateResumeFormat(text string) []string {
	warnings := CheckFormat(text)
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.Details
	}
	return out
}

func countUnusualSymbols(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(allowedPunctuation, r) {
			continue
		}
		n++
	}
	return n
}
