package scoring

import (
	"math"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/skills"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const (
	// Category caps.
	maxContent      = 20.0
	maxSkills       = 25.0
	maxExperience   = 20.0
	maxPresentation = 15.0
	maxATS          = 20.0
	maxBonus        = 10.0

	essentialWeight = 12.0
	optionalWeight  = 8.0
	optionalTarget  = 6.0

	relevanceWeight = 10.0

	keywordWeight = 8.0
	headerWeight  = 4.0

	minATSLength = 500
	maxATSLength = 3000
)

// Field penalties applied after rounding.
const (
	penaltyMissingCerts = 10
	penaltyFewSkills    = 8
	penaltyFewVerbs     = 5
	minDataSkills       = 5
	minManagementVerbs  = 3
)

var (
	essentialSections = []string{"experience", "education", "skills"}
	optionalSections  = []string{"objective", "summary", "projects", "certifications", "achievements", "volunteer"}

	// ScoredHeaders are the section headings counted by the ATS header check.
	ScoredHeaders = []string{"experience", "education", "skills", "summary", "objective", "projects", "certifications"}

	experienceWords = []string{"experience", "work", "employment", "job"}
	companyWords    = []string{"company", "corporation", "inc", "ltd", "llc"}
	portfolioHosts  = []string{"github.com", "portfolio", "behance.net"}
	summaryWords    = []string{"summary", "objective", "profile"}
)

// Scorer rates a résumé against the keyword lists of a taxonomy.
type Scorer struct {
	taxonomy *skills.Taxonomy
}

// New returns a Scorer backed by taxonomy.
func New(taxonomy *skills.Taxonomy) *Scorer {
	if taxonomy == nil {
		taxonomy = skills.Default()
	}
	return &Scorer{taxonomy: taxonomy}
}

var defaultScorer = New(nil)

// Score rates text with the built-in taxonomy.
func Score(text string, info types.ExtractedInfo, field types.Field) (int, types.ScoreBreakdown) {
	return defaultScorer.Score(text, info, field)
}

// Score returns the total in [0, 100] and the per-category breakdown.
func (s *Scorer) Score(text string, info types.ExtractedInfo, field types.Field) (int, types.ScoreBreakdown) {
	sig := NewSignals(text, info)
	keywords := s.taxonomy.Keywords(field)

	content := computeContentScore(sig)
	skillScore := s.computeSkillsScore(info, field, len(keywords))
	experience := computeExperienceScore(sig)
	presentation := computePresentationScore(sig)
	ats, atsDetails := computeATSScore(sig, keywords)
	bonus := computeBonusScore(sig)

	total := content + skillScore + experience + presentation + ats + bonus
	final := int(math.Min(100, math.RoundToEven(total)))
	final = applyFieldPenalty(final, field, sig)

	breakdown := types.ScoreBreakdown{
		ContentCompleteness:      round1(content),
		SkillsAssessment:         round1(skillScore),
		ExperienceImpact:         round1(experience),
		ProfessionalPresentation: round1(presentation),
		ATSOptimization:          round1(ats),
		ATSDetails:               atsDetails,
		BonusPoints:              round1(bonus),
		TotalScore:               final,
	}
	return final, breakdown
}

func computeContentScore(sig Signals) float64 {
	essential := countPresent(sig.Lower, essentialSections)
	optional := countPresent(sig.Lower, optionalSections)
	score := float64(essential) / float64(len(essentialSections)) * essentialWeight
	score += math.Min(float64(optional)/optionalTarget*optionalWeight, optionalWeight)
	return math.Min(score, maxContent)
}

func (s *Scorer) computeSkillsScore(info types.ExtractedInfo, field types.Field, keywordCount int) float64 {
	valid := info.ValidSkills()
	score := 0.0
	switch n := len(valid); {
	case n >= 8:
		score = 10
	case n >= 5:
		score = 7
	case n >= 3:
		score = 5
	case n >= 1:
		score = 3
	}
	if keywordCount > 0 {
		relevant := 0
		for _, skill := range valid {
			if s.taxonomy.IsFieldKeyword(field, skill) {
				relevant++
			}
		}
		score += float64(relevant) / float64(max(1, len(valid))) * relevanceWeight
	}
	return math.Min(score, maxSkills)
}

func computeExperienceScore(sig Signals) float64 {
	score := 0.0
	switch {
	case sig.ActionVerbs >= 5 && sig.Metrics >= 3:
		score = 15
	case sig.ActionVerbs >= 3 && sig.Metrics >= 1:
		score = 10
	case sig.ActionVerbs >= 2:
		score = 7
	case sig.ActionVerbs >= 1:
		score = 3
	}
	switch {
	case sig.Length > 2000:
		score += 5
	case sig.Length > 1000:
		score += 3
	case sig.Length > 500:
		score += 1
	}
	return math.Min(score, maxExperience)
}

func computePresentationScore(sig Signals) float64 {
	contact := 0.0
	if sig.HasEmail {
		contact += 2
	}
	if sig.HasPhone {
		contact += 2
	}
	if sig.HasLinkedIn {
		contact++
	}

	formatting := 0.0
	if sig.HasBullets {
		formatting += 2
	}
	if sig.HasSeparators {
		formatting += 2
	}
	if sig.ConciseSentences > 5 {
		formatting++
	}

	certs := 0.0
	switch {
	case sig.CertsCount >= 3:
		certs = 5
	case sig.CertsCount >= 1:
		certs = 3
	}

	score := math.Min(contact, 5) + math.Min(formatting, 5) + certs
	return math.Min(score, maxPresentation)
}

func computeATSScore(sig Signals, keywords []string) (float64, types.ATSBreakdown) {
	var details types.ATSBreakdown

	keywordScore := 0.0
	if len(keywords) > 0 {
		found := countPresent(sig.Lower, lowerAll(keywords))
		keywordScore = float64(found) / float64(len(keywords)) * keywordWeight
	}
	details.KeywordMatch = round1(keywordScore)

	headers := countPresent(sig.Lower, ScoredHeaders)
	headerScore := float64(headers) / float64(len(ScoredHeaders)) * headerWeight
	details.SectionHeaders = round1(headerScore)

	format := 0
	if sig.HasBullets {
		format++
	}
	if !sig.HasSpecialChars {
		format++
	}
	if sig.Length >= minATSLength && sig.Length <= maxATSLength {
		format++
	}
	details.FormatCompatibility = format

	contact := 0
	if sig.HasEmail {
		contact++
	}
	if sig.HasPhone {
		contact++
	}
	details.ContactInfo = contact

	experience := 0
	if sig.MentionsAny(experienceWords...) {
		experience++
	}
	if sig.DatedYear {
		experience++
	}
	if sig.MentionsAny(companyWords...) {
		experience++
	}
	details.ExperienceDetails = experience

	total := keywordScore + headerScore + float64(format+contact+experience)
	return math.Min(total, maxATS), details
}

func computeBonusScore(sig Signals) float64 {
	score := 0.0
	if sig.Mentions("projects") {
		score += 3
	}
	if sig.MentionsAny(portfolioHosts...) {
		score += 2
	}
	if sig.HasEducation {
		score += 2
	}
	if sig.MentionsAny(summaryWords...) {
		score += 2
	}
	if sig.RecentYear {
		score++
	}
	return math.Min(score, maxBonus)
}

func applyFieldPenalty(score int, field types.Field, sig Signals) int {
	switch field {
	case types.FieldCybersecurity, types.FieldCloudComputing:
		if sig.CertsCount < 1 {
			score -= penaltyMissingCerts
		}
	case types.FieldDataScience, types.FieldArtificialIntelligence:
		if sig.SkillsCount < minDataSkills {
			score -= penaltyFewSkills
		}
	case types.FieldProductManagement, types.FieldBusinessAnalyst:
		if sig.ActionVerbs < minManagementVerbs {
			score -= penaltyFewVerbs
		}
	}
	return max(0, score)
}

// Rating maps a total score to its qualitative band.
func Rating(score int) types.Rating {
	switch {
	case score >= 85:
		return types.RatingExcellent
	case score >= 75:
		return types.RatingStrong
	case score >= 65:
		return types.RatingGoodFoundation
	case score >= 50:
		return types.RatingNeedsImprovement
	default:
		return types.RatingRequiresMajorUpdate
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
