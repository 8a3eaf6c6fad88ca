package types

// FormatWarning is a layout or extraction-quality problem detected in a résumé.
type FormatWarning struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

// FormatWarning types.
const (
	WarningShortContent = "short_content"
	WarningOCRArtifacts = "ocr_artifacts"
	WarningMultiColumn  = "multi_column"
	WarningFewWords     = "few_words"
)
