package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/sections"
)

const maxSkillLen = 40

var (
	skillCleanRe   = regexp.MustCompile(`[^a-zA-Z0-9+.#\s]`)
	skillContextRe = regexp.MustCompile(`(?i)(skills?\s*[:\-]|proficient in|experience with|technologies\s*[:\-]|tools\s*[:\-]|stack\s*[:\-]|familiar with)\s*(.{0,200})`)
	punctuationRe  = regexp.MustCompile(`[^\w\s]`)
)

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"creativity", "adaptability", "time management", "organization", "attention to detail",
	"analytical", "strategic thinking", "project management", "customer service",
	"negotiation", "presentation", "research", "collaboration", "initiative",
	"flexibility", "multitasking", "decision making", "mentoring", "coaching",
}

var (
	eduBlocklist = []string{
		"university", "college", "school", "institute", "academy", "junior college",
		"polytechnic", "campus",
	}
	companyBlocklist = []string{
		" private limited", " pvt", "pvt.", "limited", " ltd", "ltd.", " inc", "inc.", " llc", "llc.",
		"solutions", "technologies", "labs", "systems", "corporation", "corp", "company",
	}
	skillNoise = map[string]bool{
		"tstracking": true, "tracking id": true, "tracking": true, "na": true, "n/a": true,
	}
	// shortSkills are acronyms kept despite their length.
	shortSkills = map[string]bool{
		"ai": true, "ml": true, "dl": true, "nlp": true, "cv": true, "ux": true, "ui": true, "qa": true,
		"db": true, "ar": true, "vr": true, "sem": true, "seo": true, "ips": true, "ids": true,
	}
	skillAliases = map[string]string{
		"ar":  "Augmented Reality",
		"vr":  "Virtual Reality",
		"ai":  "Artificial Intelligence",
		"ml":  "Machine Learning",
		"nlp": "Natural Language Processing",
		"ux":  "User Experience",
		"ui":  "User Interface",
		"sem": "Search Engine Marketing",
		"seo": "Search Engine Optimization",
		"ips": "Intrusion Prevention System",
		"ids": "Intrusion Detection System",
	}
)

// skillKey lower-cases a raw skill item and strips characters that never
// appear in skill names.
func skillKey(item string) string {
	return strings.ToLower(strings.TrimSpace(skillCleanRe.ReplaceAllString(item, "")))
}

func validSkillKey(key string) bool {
	n := runeLen(key)
	return n > 1 && n <= maxSkillLen
}

// preprocess lower-cases text and turns punctuation into spaces.
func preprocess(text string) string {
	return collapseSpaces(punctuationRe.ReplaceAllString(strings.ToLower(text), " "))
}

// looksLikeOrganization rejects institutions, companies, dates, contacts and
// number-heavy strings.
func looksLikeOrganization(s string) bool {
	low := strings.ToLower(s)
	if containsAny(low, eduBlocklist) || containsAny(low, companyBlocklist) {
		return true
	}
	if wordYearRe.MatchString(low) || strings.Contains(low, "@") || strings.Contains(low, "http") {
		return true
	}
	digits, total := 0, 0
	for _, r := range low {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		total = 1
	}
	return float64(digits)/float64(total) > 0.3
}

// expandSkill applies the short-token rules and acronym expansion. It reports
// false when the item is noise.
func expandSkill(item string) (string, bool) {
	base := strings.TrimSpace(item)
	low := strings.ToLower(base)
	n := runeLen(low)
	switch {
	case skillNoise[low]:
		return "", false
	case n <= 2 && !shortSkills[low]:
		return "", false
	case n == 3 && !shortSkills[low] && !isUpper(base):
		return "", false
	}
	if alias, ok := skillAliases[low]; ok {
		base = alias
	}
	return collapseSpaces(base), true
}

func (e *Extractor) extractSkills(text string) []string {
	// Items from skills sections, keyed by cleaned form, keeping first-seen casing.
	sectionKeys := make(map[string]string)
	var order []string
	for _, block := range sections.SkillsFamily.Blocks(text) {
		for _, item := range skillDelims.Split(block.Text, -1) {
			original := strings.TrimSpace(item)
			key := skillKey(original)
			if !validSkillKey(key) {
				continue
			}
			if _, ok := sectionKeys[key]; !ok {
				sectionKeys[key] = original
				order = append(order, key)
			}
		}
	}

	contextTerms := make(map[string]bool)
	for _, m := range skillContextRe.FindAllStringSubmatch(text, -1) {
		for _, token := range skillDelims.Split(m[2], -1) {
			if key := skillKey(token); validSkillKey(key) {
				contextTerms[key] = true
			}
		}
	}

	var candidates []string
	for _, key := range order {
		v := strings.Trim(collapseSpaces(sectionKeys[key]), " .")
		if !looksLikeOrganization(v) {
			candidates = append(candidates, v)
		}
	}
	for _, kw := range e.taxonomy.AllKeywords() {
		if _, inSection := sectionKeys[kw]; inSection || contextTerms[kw] {
			if !looksLikeOrganization(kw) {
				candidates = append(candidates, kw)
			}
		}
	}
	processed := preprocess(text)
	for _, s := range softSkills {
		if strings.Contains(processed, s) {
			candidates = append(candidates, s)
		}
	}

	var out []string
	for _, c := range dedupeFold(candidates) {
		if s, ok := expandSkill(c); ok {
			out = append(out, normalizeItem(s))
		}
	}
	return dedupeFold(out)
}
