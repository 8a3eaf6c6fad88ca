// Package parsing extracts structured facts from résumé text.
package parsing

import (
	"sort"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/skills"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// Extractor turns résumé text into ExtractedInfo. It holds only read-only
// tables and is safe for concurrent use.
type Extractor struct {
	taxonomy       *skills.Taxonomy
	nameChain      []strategy[[]string, string]
	phoneChain     []strategy[string, string]
	educationChain []strategy[[]string, []string]
}

// New builds an extractor that recognizes skills from taxonomy.
func New(taxonomy *skills.Taxonomy) *Extractor {
	return &Extractor{
		taxonomy:       taxonomy,
		nameChain:      []strategy[[]string, string]{nameFromHeading, nameFromPattern, nameFromEntities},
		phoneChain:     []strategy[string, string]{phoneGrouped, phoneMatcher(loosePhoneRe), phoneMatcher(digitPhoneRe)},
		educationChain: []strategy[[]string, []string]{canonicalEducation, rawEducation},
	}
}

var defaultExtractor = New(skills.Default())

// Default returns the shared extractor built on the default taxonomy.
func Default() *Extractor {
	return defaultExtractor
}

// ExtractInfo parses text with the default extractor.
func ExtractInfo(text string, hyperlinks ...string) types.ExtractedInfo {
	return defaultExtractor.Extract(text, hyperlinks...)
}

// Extract parses text. Hyperlink targets found in the source document are
// appended as trailing lines so the link extractors can see them.
func (e *Extractor) Extract(text string, hyperlinks ...string) types.ExtractedInfo {
	text = WithHyperlinks(text, hyperlinks)

	var info types.ExtractedInfo
	if name, ok := firstSuccess(e.nameChain, topLines(text)); ok {
		info.Name = types.Some(name)
	}
	if email, ok := extractEmail(text); ok {
		info.Email = types.Some(email)
	}
	if phone, ok := firstSuccess(e.phoneChain, text); ok {
		info.Phone = types.Some(phone)
	}
	if u, ok := linkMatcher(linkedInRe)(text); ok {
		info.LinkedIn = types.Some(u)
	}
	if u, ok := linkMatcher(gitHubRe)(text); ok {
		info.GitHub = types.Some(u)
	}
	if u, ok := extractPortfolio(text); ok {
		info.Portfolio = types.Some(u)
	}
	info.Education = types.OptionalList(e.extractEducation(text))
	info.Skills = types.OptionalList(e.extractSkills(text))
	info.Certifications = types.OptionalList(e.extractCertifications(text))
	info.Projects = types.OptionalList(e.extractProjects(text))
	return info
}

// WithHyperlinks appends the distinct http(s) links, sorted, after a blank line.
func WithHyperlinks(text string, hyperlinks []string) string {
	seen := make(map[string]bool)
	var urls []string
	for _, h := range hyperlinks {
		h = strings.TrimSpace(h)
		low := strings.ToLower(h)
		if !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
			continue
		}
		if !seen[h] {
			seen[h] = true
			urls = append(urls, h)
		}
	}
	if len(urls) == 0 {
		return text
	}
	sort.Strings(urls)
	return text + "\n\n" + strings.Join(urls, "\n")
}
