package parsing

import (
	"regexp"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/sections"
)

const minEducationItemLen = 4

var (
	degreeKeywords = []string{
		"bachelor", "master", "phd", `m\.?tech`, `b\.?tech`, `b\.?e`, `m\.?e`,
		`b\.?sc`, `m\.?sc`, "mba", "bba", "associate", "diploma", "high school",
		"intermediate", "secondary", "senior secondary", "10th", "12th", "hsc", "ssc",
	}
	institutionKeywords = []string{"university", "college", "institute", "school", "academy", "polytechnic"}

	degreeRe      = regexp.MustCompile(`(?:` + strings.Join(degreeKeywords, "|") + `)`)
	yearRangeExpr = `(?:19|20)\d{2}\s*[\-\x{2013}\x{2014}]\s*(?:19|20)?\d{2}|to\s*(?:19|20)\d{2}`

	educationFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:` + strings.Join(degreeKeywords, "|") + `)[^\n\r,;]*?(?:at|from|in)?\s*[A-Za-z .&'\-]*\s*(?:(?:19|20)\d{2})?(?:\s*(?:` + yearRangeExpr + `))?`),
		regexp.MustCompile(`(?i)[A-Za-z .&'\-]+(?:` + strings.Join(institutionKeywords, "|") + `)[^\n\r,;]*\s*(?:(?:19|20)\d{2})?(?:\s*(?:` + yearRangeExpr + `))?`),
	}

	instituteDegreeRe = regexp.MustCompile(`(?i)\b(b\.?(e|tech)|btech|b\.e|b\.tech|m\.?(e|tech)|mtech|b\.sc|m\.sc|bsc|msc|phd|mba|bba|associate|diploma|intermediate|12th|hsc|senior secondary|10th|ssc|secondary|standard|grade)\b`)
	prepositionRe     = regexp.MustCompile(`(?i)\b(at|from|in|of)\b`)
	dashSeparatorRe   = regexp.MustCompile(`\s+[\-\x{2013}\x{2014}]\s+`)
)

// degreeTier maps a degree level to the label used in canonical lines.
type degreeTier struct {
	label string
	match *regexp.Regexp
}

var degreeTiers = []degreeTier{
	{"B.Tech", regexp.MustCompile(`\b(b\.?(e|tech)|btech|b\.e|b\.tech)\b`)},
	{"Intermediate", regexp.MustCompile(`\b(intermediate|12th|hsc|senior secondary)\b`)},
	{"SSC", regexp.MustCompile(`\b(10th|ssc|secondary)\b`)},
}

// educationFromSections collects education-like items from every education block.
func educationFromSections(text string) []string {
	var found []string
	for _, block := range sections.EducationFamily.Blocks(text) {
		for _, item := range lineDelims.Split(block.Text, -1) {
			line := strings.TrimSpace(item)
			if runeLen(line) < minEducationItemLen {
				continue
			}
			low := strings.ToLower(line)
			if !degreeRe.MatchString(low) && !containsAny(low, institutionKeywords) && !yearRe.MatchString(low) {
				continue
			}
			if strings.Contains(low, "@") || strings.Contains(low, "http") {
				continue
			}
			found = append(found, line)
		}
	}
	return found
}

// educationFromPatterns scans the whole document for degree- or
// institution-led phrases.
func educationFromPatterns(text string) []string {
	var found []string
	for _, re := range educationFallbacks {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if runeLen(m) > 5 {
				found = append(found, m)
			}
		}
	}
	return found
}

// canonicalEducation pairs each degree tier with the institution of the
// first candidate at that tier. It fails when no tier yields an institution.
func canonicalEducation(candidates []string) ([]string, bool) {
	var lines []string
	for _, tier := range degreeTiers {
		for _, c := range candidates {
			if !tier.match.MatchString(strings.ToLower(c)) {
				continue
			}
			line := tier.label + " - " + institute(c)
			if institutePart(line) != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
			break
		}
	}
	lines = dedupeFold(lines)
	return lines, len(lines) > 0
}

// rawEducation returns the normalized candidates unchanged.
func rawEducation(candidates []string) ([]string, bool) {
	return candidates, len(candidates) > 0
}

// institute strips degree words, prepositions, years and dash separators.
func institute(line string) string {
	t := instituteDegreeRe.ReplaceAllString(line, " ")
	t = prepositionRe.ReplaceAllString(t, " ")
	t = wordYearRe.ReplaceAllString(t, " ")
	t = dashSeparatorRe.ReplaceAllString(t, " ")
	return strings.Trim(collapseSpaces(t), " ,.-")
}

func institutePart(line string) string {
	if i := strings.LastIndex(line, "-"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line)
}

func (e *Extractor) extractEducation(text string) []string {
	found := educationFromSections(text)
	if len(found) == 0 {
		found = educationFromPatterns(text)
	}
	lines, _ := firstSuccess(e.educationChain, normalizeList(found))
	return lines
}
