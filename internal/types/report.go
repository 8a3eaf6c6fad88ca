package types

import (
	"time"

	"github.com/google/uuid"
)

// Source describes where an analyzed document came from.
type Source struct {
	FileName    string `json:"file_name,omitempty"`
	ContentHash string `json:"content_hash"`
	MediaType   string `json:"media_type"`
	ObjectKey   string `json:"object_key,omitempty"`
}

// Recommendations are field-specific suggestions for improving a résumé.
type Recommendations struct {
	MissingSkills           []string `json:"missing_skills"`
	MissingSections         []string `json:"missing_sections"`
	MissingProviders        []string `json:"missing_providers"`
	Certifications          []string `json:"certifications"`
	ProjectIdeas            []string `json:"project_ideas"`
	RelevantCourses         []string `json:"relevant_courses"`
	OtherCourses            []string `json:"other_courses"`
	RelevantCertifications  []string `json:"relevant_certifications"`
	OtherCertificationsHeld []string `json:"other_certifications_held"`
}

// SectionSummary names a labeled block found in the document.
type SectionSummary struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Report is the full analysis of one résumé.
type Report struct {
	ID              uuid.UUID        `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	Source          Source           `json:"source"`
	Info            ExtractedInfo    `json:"info"`
	Field           Field            `json:"field"`
	Score           int              `json:"score"`
	Rating          Rating           `json:"rating"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Tips            []string         `json:"tips"`
	FormatWarnings  []string         `json:"format_warnings"`
	ATSFeatures     ATSFeatures      `json:"ats_features"`
	Recommendations Recommendations  `json:"recommendations"`
	Sections        []SectionSummary `json:"sections"`
}
