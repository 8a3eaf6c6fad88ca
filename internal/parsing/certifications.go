package parsing

import (
	"regexp"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/sections"
)

var (
	certProviders = []string{
		"coursera", "udemy", "edx", "udacity", "aws", "amazon", "google", "microsoft", "ibm",
		"oracle", "linkedin learning", "skillshare", "pluralsight", "datacamp",
		"deeplearning.ai", "fast.ai", "kaggle", "hackerrank", "leetcode",
	}
	certKeywords = []string{
		"certified", "certification", "certificate", "accredited", "professional",
		"specialist", "expert", "master", "foundation", "associate",
	}
	// strictCertKeywords are the keywords trusted outside a certifications section.
	strictCertKeywords = []string{"certified", "certification", "certificate", "accredited"}
	certAcronyms       = []string{
		"pmp", "cissp", "ceh", "ccna", "csm", "psm", "pspo", "itil", "ocp", "oca",
		"security+", "network+", "a+", "aws saa", "aws sap", "gcp pca", "az-900", "dp-100",
		"pl-300", "sc-200", "ai-102", "ms-900",
	}
	credentialWords = []string{"course", "training", "badge", "credential", "nanodegree", "bootcamp", "license", "academy", "forage"}
	degreeWords     = []string{"university", "college", "school", "degree"}

	certCodeRe   = regexp.MustCompile(`\b[A-Z]{2,}-\d{2,3}\b`)
	titleWordRe  = regexp.MustCompile(`\b[A-Za-z][a-z]+\b`)
	certPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\baws certified [a-zA-Z ][a-zA-Z \-+:/()0-9]+`),
		regexp.MustCompile(`\bgoogle (?:cloud )?professional [a-zA-Z \-+:/()0-9]+`),
		regexp.MustCompile(`\b(?:microsoft|azure) certified [a-zA-Z \-+:/()0-9]+`),
		regexp.MustCompile(`\bcertificate in [a-zA-Z \-+:/()0-9]+`),
		regexp.MustCompile(`\bcertification in [a-zA-Z \-+:/()0-9]+`),
	}
	certProviderRe = compileWholeWords(certProviders)
	certAcronymRe  = compileWholeWords(certAcronyms)
)

func compileWholeWords(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(?:` + strings.Join(quoted, "|") + `)(?:$|[^a-z0-9])`)
}

// hasCertSignal reports whether a line inside a certifications section names
// a provider, keyword, acronym, exam code or credential word.
func hasCertSignal(line string) bool {
	low := strings.ToLower(line)
	return containsAny(low, certProviders) ||
		containsAny(low, certKeywords) ||
		containsAny(low, certAcronyms) ||
		certCodeRe.MatchString(line) ||
		containsAny(low, credentialWords)
}

func titleCaseWords(line string) int {
	n := 0
	for _, w := range titleWordRe.FindAllString(line, -1) {
		if w[0] >= 'A' && w[0] <= 'Z' {
			n++
		}
	}
	return n
}

func certificationsFromSections(text string) []string {
	var found []string
	for _, block := range sections.CertificationsFamily.Blocks(text) {
		for _, item := range certDelims.Split(block.Text, -1) {
			line := strings.TrimSpace(item)
			if runeLen(line) < 3 {
				continue
			}
			if containsAny(strings.ToLower(line), degreeWords) {
				continue
			}
			if hasCertSignal(line) || titleCaseWords(line) >= 2 {
				found = append(found, collapseRepeatedWords(line))
			}
		}
	}
	return found
}

// certificationsFromLines scans every line of the document for stronger
// certification evidence. A provider name only counts together with a credential word.
func certificationsFromLines(text string) []string {
	var found []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		low := strings.ToLower(line)
		if runeLen(line) <= 3 {
			continue
		}
		strong := containsAny(low, strictCertKeywords) ||
			certAcronymRe.MatchString(line) ||
			certCodeRe.MatchString(line) ||
			(certProviderRe.MatchString(line) && containsAny(low, credentialWords))
		if strong && !containsAny(low, degreeWords) {
			found = append(found, line)
			continue
		}
		for _, re := range certPatterns {
			if re.MatchString(low) {
				found = append(found, line)
				break
			}
		}
	}
	return found
}

func (e *Extractor) extractCertifications(text string) []string {
	found := certificationsFromSections(text)
	if len(found) == 0 {
		found = certificationsFromLines(text)
	}
	return normalizeList(found)
}
