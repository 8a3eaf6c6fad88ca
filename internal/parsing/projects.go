package parsing

import (
	"regexp"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/sections"
)

const (
	projectEdgeChars  = "-–—|:;"
	titleEdgeChars    = "-–—|:;•·"
	maxTagListWords   = 6
	maxFallbackWords  = 6
	minProjectItemLen = 5
)

var (
	titleSeparators    = []string{" - ", " – ", " — ", ":", " | ", " |", "| "}
	trailingParenRe    = regexp.MustCompile(`\s*\([^)]*\)$`)
	leadingTitleCaseRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9]+(?:[\s\-][A-Z][A-Za-z0-9]+){0,6})\b`)
	camelCaseRe        = regexp.MustCompile(`[A-Z][a-z]+[A-Z][a-z]+`)

	projectStopTitles = map[string]bool{
		"technologies": true, "internships": true, "internship": true, "currently": true,
		"experience": true, "responsibilities": true, "built": true, "created": true, "developed": true,
	}
	projectStopFragments = []string{" internship", "internship ", " responsibilities", " duties"}
	projectSectionNoise  = []string{"experience", "education", "skills", "certification", "contact"}
	projectCues          = []string{"project:", "capstone", "built", "developed", "implemented", "designed", "engineered"}
)

// projectTitle derives a short title from a descriptive project line.
func projectTitle(line string) string {
	s := strings.Trim(strings.TrimSpace(line), titleEdgeChars)
	if i := strings.Index(s, ","); i >= 0 && len(strings.Fields(s[:i])) <= maxTagListWords {
		s = strings.TrimSpace(s[:i])
	}
	for _, sep := range titleSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			if left := strings.TrimSpace(s[:i]); runeLen(left) >= 3 {
				s = left
				break
			}
		}
	}
	s = strings.TrimSpace(trailingParenRe.ReplaceAllString(s, ""))
	if m := leadingTitleCaseRe.FindStringSubmatch(s); m != nil && runeLen(m[1]) >= 3 {
		return m[1]
	}
	return strings.Join(head(strings.Fields(s), maxFallbackWords), " ")
}

// validProjectTitle accepts a CamelCase single token or a title of two to six words.
func validProjectTitle(title string) bool {
	low := strings.ToLower(strings.TrimSpace(title))
	if runeLen(low) < 3 || projectStopTitles[low] || containsAny(low, projectStopFragments) {
		return false
	}
	if !strings.Contains(title, " ") && camelCaseRe.MatchString(title) {
		return true
	}
	wc := len(strings.Fields(title))
	return wc >= 2 && wc <= 6
}

func projectsFromSections(text string) []string {
	var found []string
	for _, block := range sections.ProjectsFamily.Blocks(text) {
		for _, item := range lineDelims.Split(block.Text, -1) {
			line := strings.Trim(strings.TrimSpace(item), projectEdgeChars)
			if runeLen(line) < minProjectItemLen {
				continue
			}
			if containsAny(strings.ToLower(line), projectSectionNoise) {
				continue
			}
			if t := projectTitle(line); validProjectTitle(t) {
				found = append(found, t)
			}
		}
	}
	return found
}

// projectsFromCues takes lines with project cues and the line after each.
func projectsFromCues(text string) []string {
	var found []string
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	add := func(raw string) {
		cleaned := strings.Trim(strings.TrimSpace(raw), projectEdgeChars)
		if runeLen(cleaned) <= minProjectItemLen {
			return
		}
		if t := projectTitle(cleaned); validProjectTitle(t) {
			found = append(found, t)
		}
	}
	for i, ln := range lines {
		if !containsAny(strings.ToLower(strings.TrimSpace(ln)), projectCues) {
			continue
		}
		add(ln)
		if i+1 < len(lines) {
			add(lines[i+1])
		}
	}
	return found
}

func (e *Extractor) extractProjects(text string) []string {
	found := projectsFromSections(text)
	if len(found) == 0 {
		found = projectsFromCues(text)
	}
	var long []string
	for _, p := range found {
		if clean := strings.Trim(collapseSpaces(p), " ."); runeLen(clean) > 4 {
			long = append(long, clean)
		}
	}
	return normalizeList(long)
}
