package scoring

import (
	"fmt"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// StandardHeaders are the headings an applicant tracking system expects to find.
var StandardHeaders = []string{
	"experience", "education", "skills", "certifications", "projects",
	"summary", "objective", "work history", "employment",
}

const (
	maxKeywordsReported = 10
	compatibilityMax    = 20.0
)

var atsExperienceWords = []string{"experience", "work", "employment"}

// ATSFeatures describes the ATS-relevant signals of a résumé using the built-in taxonomy.
func ATSFeatures(text string, info types.ExtractedInfo, field types.Field) types.ATSFeatures {
	return defaultScorer.ATSFeatures(text, info, field)
}

// ATSFeatures describes the ATS-relevant signals of a résumé.
func (s *Scorer) ATSFeatures(text string, info types.ExtractedInfo, field types.Field) types.ATSFeatures {
	sig := NewSignals(text, info)
	keywords := s.taxonomy.Keywords(field)

	features := types.ATSFeatures{
		KeywordsFound:         []string{},
		KeywordMatchRate:      "N/A",
		SkillsCount:           sig.SkillsCount,
		SkillsQuality:         skillsQuality(sig.SkillsCount),
		CompatibilityScoreMax: compatibilityMax,
	}
	score := 0.0

	if len(keywords) > 0 {
		var matched []string
		for _, kw := range keywords {
			if strings.Contains(sig.Lower, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		features.KeywordsFound = head(matched, maxKeywordsReported)
		features.KeywordMatchRate = ratio(len(matched), len(keywords))
		score += float64(len(matched)) / float64(len(keywords)) * keywordWeight
	}

	headers := []string{}
	for _, h := range StandardHeaders {
		if sig.Mentions(h) {
			headers = append(headers, h)
		}
	}
	features.StandardHeadersFound = headers
	features.HeaderCompliance = ratio(len(headers), len(StandardHeaders))
	score += float64(len(headers)) / float64(len(StandardHeaders)) * headerWeight

	features.ContactInformation = map[string]string{
		"Email":    presence(sig.HasEmail),
		"Phone":    presence(sig.HasPhone),
		"LinkedIn": presence(sig.HasLinkedIn),
	}

	lengthOK := sig.Length >= minATSLength && sig.Length <= maxATSLength
	features.Formatting = map[string]string{
		"Bullet Points":      presence(sig.HasBullets),
		"Special Characters": "Clean",
		"Content Length":     fmt.Sprintf("%d characters (%s)", sig.Length, lengthLabel(sig.Length)),
	}
	if sig.HasSpecialChars {
		features.Formatting["Special Characters"] = "Contains Special Chars"
	}

	hasExperience := sig.MentionsAny(atsExperienceWords...)
	hasCompany := sig.MentionsAny(companyWords...)
	features.ExperienceDetails = map[string]string{
		"Experience Section": presence(hasExperience),
		"Recent Dates":       presence(sig.RecentYear),
		"Company Names":      presence(hasCompany),
	}

	for _, ok := range []bool{
		sig.HasBullets, !sig.HasSpecialChars, lengthOK,
		sig.HasEmail, sig.HasPhone,
		hasExperience, sig.RecentYear, hasCompany,
	} {
		if ok {
			score++
		}
	}
	features.CompatibilityScore = round1(score)
	return features
}

func skillsQuality(n int) string {
	switch {
	case n >= 5:
		return "Strong"
	case n >= 3:
		return "Moderate"
	default:
		return "Weak"
	}
}

func lengthLabel(n int) string {
	switch {
	case n < minATSLength:
		return "Too Short"
	case n > maxATSLength:
		return "Too Long"
	default:
		return "Optimal"
	}
}

func presence(ok bool) string {
	if ok {
		return "Present"
	}
	return "Missing"
}

func ratio(n, total int) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", n, total, float64(n)/float64(total)*100)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []string{}
	}
	return items
}
