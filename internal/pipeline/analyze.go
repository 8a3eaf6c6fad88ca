// Package pipeline composes extraction, classification, scoring and
// diagnostics into a single report per résumé.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/diagnostics"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/parsing"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/scoring"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/sections"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/skills"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/validation"
)

// Analyzer holds the immutable tables shared by every analysis. It is safe
// for concurrent use.
type Analyzer struct {
	taxonomy  *skills.Taxonomy
	extractor *parsing.Extractor
	scorer    *scoring.Scorer
	now       func() time.Time
}

// NewAnalyzer builds an Analyzer over taxonomy, or the built-in one when nil.
func NewAnalyzer(taxonomy *skills.Taxonomy) *Analyzer {
	if taxonomy == nil {
		taxonomy = skills.Default()
	}
	return &Analyzer{
		taxonomy:  taxonomy,
		extractor: parsing.New(taxonomy),
		scorer:    scoring.New(taxonomy),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var defaultAnalyzer = NewAnalyzer(nil)

// Default returns the Analyzer backed by the built-in taxonomy.
func Default() *Analyzer {
	return defaultAnalyzer
}

// Analyze runs the full analysis with the built-in taxonomy.
func Analyze(doc ingestion.Document) *types.Report {
	return defaultAnalyzer.Analyze(doc)
}

// Analyze produces the report for one document. Link targets are appended
// to the text before any stage runs, so every stage sees the same input.
func (a *Analyzer) Analyze(doc ingestion.Document) *types.Report {
	text := parsing.WithHyperlinks(doc.Text, doc.Links)

	info := a.extractor.Extract(text)
	field := a.taxonomy.DetectField(text)
	score, breakdown := a.scorer.Score(text, info, field)
	strengths, weaknesses := diagnostics.StrengthsWeaknesses(text, info)

	return &types.Report{
		ID:              uuid.New(),
		CreatedAt:       a.now(),
		Source:          doc.Source,
		Info:            info,
		Field:           field,
		Score:           score,
		Rating:          scoring.Rating(score),
		Breakdown:       breakdown,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Tips:            diagnostics.Tips(text, info),
		FormatWarnings:  nonNil(validation.ValidateResumeFormat(text)),
		ATSFeatures:     a.scorer.ATSFeatures(text, info, field),
		Recommendations: a.taxonomy.Recommend(text, info, field),
		Sections:        summarizeSections(sections.Segment(text)),
	}
}

func summarizeSections(blocks []sections.Block) []types.SectionSummary {
	out := make([]types.SectionSummary, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, types.SectionSummary{Kind: string(b.Kind), Start: b.Start, End: b.End})
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// FieldDetection is the outcome of classifying a résumé without scoring it.
type FieldDetection struct {
	Field       types.Field `json:"field"`
	SkillsField types.Field `json:"skills_field"`
	Skills      []string    `json:"skills"`
}

// DetectField classifies text by its keywords and, separately, by the skills
// extracted from it.
func (a *Analyzer) DetectField(doc ingestion.Document) FieldDetection {
	text := parsing.WithHyperlinks(doc.Text, doc.Links)
	found := nonNil(a.extractor.Extract(text).ValidSkills())
	return FieldDetection{
		Field:       a.taxonomy.DetectField(text),
		SkillsField: a.taxonomy.DetectFieldFromSkills(found),
		Skills:      found,
	}
}
