package skills

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// CertProviders are the learning platforms a well-rounded profile tends to show.
var CertProviders = []string{"coursera", "udemy", "aws", "google", "microsoft", "edx", "udacity", "ibm", "oracle", "linkedin learning"}

// IdealSections are the section words a complete résumé mentions.
var IdealSections = []string{"objective", "projects", "skills", "education", "experience", "certifications", "contact", "declaration"}

var titleCaser = cases.Title(language.English)

// RecommendSkills returns the keywords of field that are missing from skills.
func (t *Taxonomy) RecommendSkills(skills []string, field types.Field) []string {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = true
	}
	var missing []string
	for _, kw := range t.Keywords(field) {
		if !have[kw] {
			missing = append(missing, kw)
		}
	}
	return missing
}

// SuggestMissing returns the ideal sections absent from text and the
// certification providers absent from certs.
func SuggestMissing(text string, certs []string) (sections, providers []string) {
	low := strings.ToLower(text)
	for _, s := range IdealSections {
		if !strings.Contains(low, s) {
			sections = append(sections, s)
		}
	}
	for _, p := range CertProviders {
		found := false
		for _, c := range certs {
			if strings.Contains(strings.ToLower(c), p) {
				found = true
				break
			}
		}
		if !found {
			providers = append(providers, titleCaser.String(p))
		}
	}
	return sections, providers
}

// ClassifyCourses splits the suggested courses for field into those that
// mention one of the skills and the rest.
func ClassifyCourses(skills []string, field types.Field) (relevant, other []string) {
	for _, c := range lookup(fieldCourses, field) {
		low := strings.ToLower(c)
		matched := false
		for _, s := range skills {
			if s != "" && strings.Contains(low, strings.ToLower(s)) {
				matched = true
				break
			}
		}
		if matched {
			relevant = append(relevant, c)
		} else {
			other = append(other, c)
		}
	}
	return relevant, other
}

// ClassifyCertifications splits held certifications into those issued by a
// provider that the field name or the skills point at, and the rest.
func ClassifyCertifications(certs, skills []string, field types.Field) (relevant, other []string) {
	fieldLow := strings.ToLower(string(field))
	skillsLow := strings.ToLower(strings.Join(skills, " "))
	for _, c := range certs {
		low := strings.ToLower(c)
		matched := false
		for _, p := range CertProviders {
			if strings.Contains(low, p) && (strings.Contains(fieldLow, p) || strings.Contains(skillsLow, p)) {
				matched = true
				break
			}
		}
		if matched {
			relevant = append(relevant, c)
		} else {
			other = append(other, c)
		}
	}
	return relevant, other
}

// Recommend assembles every recommendation for a parsed résumé.
func (t *Taxonomy) Recommend(text string, info types.ExtractedInfo, field types.Field) types.Recommendations {
	skills := info.ValidSkills()
	certs := info.ValidCertifications()

	rec := types.Recommendations{
		MissingSkills:  t.RecommendSkills(skills, field),
		Certifications: lookup(fieldCertifications, field),
		ProjectIdeas:   lookup(fieldProjectIdeas, field),
	}
	rec.MissingSections, rec.MissingProviders = SuggestMissing(text, certs)
	rec.RelevantCourses, rec.OtherCourses = ClassifyCourses(skills, field)
	rec.RelevantCertifications, rec.OtherCertificationsHeld = ClassifyCertifications(certs, skills, field)
	return rec
}

// Recommend uses the default taxonomy.
func Recommend(text string, info types.ExtractedInfo, field types.Field) types.Recommendations {
	return defaultTaxonomy.Recommend(text, info, field)
}

func lookup(table []fieldList, field types.Field) []string {
	for _, fl := range table {
		if fl.field == field {
			return append([]string(nil), fl.items...)
		}
	}
	return nil
}
