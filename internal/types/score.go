package types

// ScoreBreakdown explains how a résumé score was assembled.
// Component values are raw subtotals rounded to one decimal.
type ScoreBreakdown struct {
	ContentCompleteness      float64      `json:"Content Completeness"`
	SkillsAssessment         float64      `json:"Skills Assessment"`
	ExperienceImpact         float64      `json:"Experience & Impact"`
	ProfessionalPresentation float64      `json:"Professional Presentation"`
	ATSOptimization          float64      `json:"ATS Optimization"`
	ATSDetails               ATSBreakdown `json:"ATS Details"`
	BonusPoints              float64      `json:"Bonus Points"`
	TotalScore               int          `json:"Total Score"`
}

// ATSBreakdown is the nested decomposition of the ATS Optimization component.
type ATSBreakdown struct {
	KeywordMatch        float64 `json:"Keyword Match"`
	SectionHeaders      float64 `json:"Section Headers"`
	FormatCompatibility int     `json:"Format Compatibility"`
	ContactInfo         int     `json:"Contact Info"`
	ExperienceDetails   int     `json:"Experience Details"`
}

// Criterion is one named line of a breakdown.
type Criterion struct {
	Name  string
	Value float64
	Max   float64
}

// Criteria lists the weighted components in presentation order.
func (b ScoreBreakdown) Criteria() []Criterion {
	return []Criterion{
		{Name: "Content Completeness", Value: b.ContentCompleteness, Max: 20},
		{Name: "Skills Assessment", Value: b.SkillsAssessment, Max: 25},
		{Name: "Experience & Impact", Value: b.ExperienceImpact, Max: 20},
		{Name: "Professional Presentation", Value: b.ProfessionalPresentation, Max: 15},
		{Name: "ATS Optimization", Value: b.ATSOptimization, Max: 20},
		{Name: "Bonus Points", Value: b.BonusPoints, Max: 10},
	}
}

// Rating is a qualitative band for a total score.
type Rating string

// Rating bands, best first.
const (
	RatingExcellent           Rating = "Excellent"
	RatingStrong              Rating = "Strong Resume"
	RatingGoodFoundation      Rating = "Good Foundation"
	RatingNeedsImprovement    Rating = "Needs Improvement"
	RatingRequiresMajorUpdate Rating = "Requires Major Updates"
)

// ATSFeatures is a descriptive report of ATS compatibility signals.
type ATSFeatures struct {
	KeywordsFound         []string          `json:"keywords_found"`
	KeywordMatchRate      string            `json:"keyword_match_rate"`
	StandardHeadersFound  []string          `json:"standard_headers_found"`
	HeaderCompliance      string            `json:"header_compliance"`
	ContactInformation    map[string]string `json:"contact_information"`
	Formatting            map[string]string `json:"formatting"`
	ExperienceDetails     map[string]string `json:"experience_details"`
	SkillsCount           int               `json:"skills_count"`
	SkillsQuality         string            `json:"skills_quality"`
	CompatibilityScore    float64           `json:"compatibility_score"`
	CompatibilityScoreMax float64           `json:"compatibility_score_max"`
}
