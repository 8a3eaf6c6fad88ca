package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

const (
	nameScanLines    = 15
	nameHeadingLines = 5
	nameBlockLines   = 10
	minNameTokens    = 2
	maxNameTokens    = 4
	minNameAlphaFrac = 0.6

	maxLowerWordsInName = 3
	personLabel         = "PERSON"
	nameTrimChars       = ",.;:()[]"
)

var (
	nonNameCharsRe = regexp.MustCompile(`[^A-Za-z\s\-']`)
	roleSuffixRe   = regexp.MustCompile(`\s[-|]\s`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:name\s*[:\-]?\s*)([A-Z][a-z]+(?: [A-Z][a-z]+)+)`),
		regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:\s[A-Z][a-z]+){1,2})(?:\s*[-|]\s*[A-Za-z\s]+)?$`),
	}

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	groupedPhoneRe = regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	loosePhoneRe   = regexp.MustCompile(`\+?[0-9]{1,4}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,4}`)
	digitPhoneRe   = regexp.MustCompile(`\+?[0-9]{10,15}`)

	linkedInRe = regexp.MustCompile(`(?i)(?:linkedin\s*[:\-]?\s*)?(https?://(?:www\.)?linkedin\.com/[a-zA-Z0-9\-_/=?]+|www\.linkedin\.com/[a-zA-Z0-9\-_/=?]+|linkedin\.com/[a-zA-Z0-9\-_/=?]+)`)
	gitHubRe   = regexp.MustCompile(`(?i)(?:github\s*[:\-]?\s*)?(https?://(?:www\.)?github\.com/[a-zA-Z0-9\-_/=?]+|www\.github\.com/[a-zA-Z0-9\-_/=?]+|github\.com/[a-zA-Z0-9\-_/=?]+)`)

	portfolioURL       = `(https?://[\w.\-]+\.[a-z]{2,}(?:/[a-zA-Z0-9\-_/=?#]+)?|www\.[\w.\-]+\.[a-z]{2,}(?:/[a-zA-Z0-9\-_/=?#]+)?)`
	labeledPortfolioRe = regexp.MustCompile(`(?i)portfolio\s*[:\-]?\s*` + portfolioURL)
	portfolioRe        = regexp.MustCompile(`(?i)` + portfolioURL)
)

// techWords are names of technologies that look like a person's name on a heading line.
var techWords = map[string]bool{
	"java": true, "python": true, "html": true, "css": true, "sql": true, "react": true,
	"node": true, "django": true, "flask": true, "aws": true, "azure": true,
}

// nonNameWords are capitalized words that never belong to a person's name.
var nonNameWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true, "profile": true, "summary": true,
	"objective": true, "experience": true, "education": true, "skills": true, "projects": true,
	"certifications": true, "contact": true, "email": true, "phone": true, "mobile": true,
	"address": true, "street": true, "road": true, "city": true, "state": true, "india": true,
	"university": true, "college": true, "institute": true, "school": true, "academy": true,
	"company": true, "limited": true, "technologies": true, "solutions": true, "systems": true,
	"engineer": true, "developer": true, "manager": true, "analyst": true, "designer": true,
	"intern": true, "senior": true, "junior": true, "lead": true, "software": true, "data": true,
	"web": true, "full": true, "stack": true, "science": true, "computer": true, "bachelor": true,
	"master": true, "technology": true, "engineering": true, "professional": true, "personal": true,
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	"machine": true, "learning": true, "artificial": true, "intelligence": true, "deep": true,
	"cloud": true, "security": true, "analytics": true,
	"linkedin": true, "github": true, "portfolio": true, "java": true, "python": true, "react": true,
	"node": true, "django": true, "flask": true, "azure": true, "google": true, "microsoft": true,
}

// topLines returns the non-blank, trimmed lines among the first lines of text.
func topLines(text string) []string {
	raw := head(strings.Split(text, "\n"), nameScanLines)
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// nameFromHeading accepts a short, mostly alphabetic, mixed-case line near the top.
func nameFromHeading(lines []string) (string, bool) {
	for _, ln := range head(lines, nameHeadingLines) {
		tokens := strings.Fields(ln)
		if len(tokens) < minNameTokens || len(tokens) > maxNameTokens {
			continue
		}
		if alphaFraction(ln) <= minNameAlphaFrac || isUpper(ln) {
			continue
		}
		candidate := strings.TrimSpace(nonNameCharsRe.ReplaceAllString(ln, ""))
		candidate = strings.TrimSpace(roleSuffixRe.Split(candidate, 2)[0])
		if candidate != "" && !techWords[strings.ToLower(candidate)] {
			return candidate, true
		}
	}
	return "", false
}

// nameFromPattern looks for a labeled name or a line of two or three capitalized words.
func nameFromPattern(lines []string) (string, bool) {
	block := strings.Join(head(lines, nameBlockLines), "\n")
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate != "" && !techWords[strings.ToLower(candidate)] && len(strings.Fields(candidate)) <= maxNameTokens {
			return candidate, true
		}
	}
	return "", false
}

// nameFromEntities takes the first PERSON entity of two to four words found
// in the top lines. A run of Title-Case words is the fallback. Lines that read
// like prose are never searched.
func nameFromEntities(lines []string) (string, bool) {
	var block []string
	for _, ln := range head(lines, nameBlockLines) {
		if !isSentenceLine(ln) {
			block = append(block, ln)
		}
	}
	if len(block) == 0 {
		return "", false
	}
	if name, ok := personEntity(block); ok {
		return name, true
	}
	return titleCaseRun(block)
}

func personEntity(lines []string) (string, bool) {
	doc, err := prose.NewDocument(strings.Join(lines, "\n"), prose.WithSegmentation(false))
	if err != nil {
		return "", false
	}
	for _, ent := range doc.Entities() {
		if ent.Label != personLabel {
			continue
		}
		if name, ok := personName(strings.Fields(ent.Text)); ok {
			return name, true
		}
	}
	return "", false
}

// personName accepts two to four name-shaped words.
func personName(tokens []string) (string, bool) {
	if len(tokens) < minNameTokens || len(tokens) > maxNameTokens {
		return "", false
	}
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		word := strings.Trim(tok, nameTrimChars)
		if !isPersonToken(word) || nonNameWords[strings.ToLower(word)] {
			return "", false
		}
		words[i] = word
	}
	return strings.Join(words, " "), true
}

func titleCaseRun(lines []string) (string, bool) {
	for _, ln := range lines {
		var run []string
		flush := func() (string, bool) {
			defer func() { run = run[:0] }()
			if len(run) >= minNameTokens && len(run) <= maxNameTokens {
				return strings.Join(run, " "), true
			}
			return "", false
		}
		for _, tok := range strings.Fields(ln) {
			word := strings.Trim(tok, nameTrimChars)
			if isPersonToken(word) && !nonNameWords[strings.ToLower(word)] {
				run = append(run, word)
				if word != tok {
					if name, ok := flush(); ok {
						return name, true
					}
				}
				continue
			}
			if name, ok := flush(); ok {
				return name, true
			}
		}
		if name, ok := flush(); ok {
			return name, true
		}
	}
	return "", false
}

// isSentenceLine reports lines of running text such as an objective statement.
func isSentenceLine(ln string) bool {
	if strings.HasSuffix(ln, ".") {
		return true
	}
	lower := 0
	for _, tok := range strings.Fields(ln) {
		if r, _ := utf8.DecodeRuneInString(tok); unicode.IsLower(r) {
			lower++
		}
	}
	return lower >= maxLowerWordsInName
}

func isPersonToken(w string) bool {
	if runeLen(w) < 2 {
		return false
	}
	for i, r := range w {
		switch {
		case i == 0:
			if !unicode.IsUpper(r) {
				return false
			}
		case r == '\'' || r == '-':
		case !unicode.IsLower(r):
			return false
		}
	}
	return true
}

func alphaFraction(s string) float64 {
	letters, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		total = 1
	}
	return float64(letters) / float64(total)
}

func extractEmail(text string) (string, bool) {
	m := emailRe.FindString(text)
	return m, m != ""
}

func phoneGrouped(text string) (string, bool) {
	m := groupedPhoneRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1] + m[2] + m[3], true
}

func phoneMatcher(re *regexp.Regexp) strategy[string, string] {
	return func(text string) (string, bool) {
		m := strings.TrimSpace(re.FindString(text))
		return m, m != ""
	}
}

func linkMatcher(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return normalizeURL(m[1]), true
	}
}

// extractPortfolio prefers a URL labeled as a portfolio, then the first URL
// that is not a LinkedIn or GitHub profile.
func extractPortfolio(text string) (string, bool) {
	if m := labeledPortfolioRe.FindStringSubmatch(text); m != nil {
		return normalizeURL(m[1]), true
	}
	for _, m := range portfolioRe.FindAllStringSubmatch(text, -1) {
		low := strings.ToLower(m[1])
		if strings.Contains(low, "linkedin.com") || strings.Contains(low, "github.com") {
			continue
		}
		return normalizeURL(m[1]), true
	}
	return "", false
}

// normalizeURL adds a scheme to protocol-less links.
func normalizeURL(u string) string {
	u = strings.TrimSpace(u)
	low := strings.ToLower(u)
	switch {
	case u == "":
		return u
	case strings.HasPrefix(low, "www."):
		return "https://" + u
	case strings.HasPrefix(low, "linkedin.com"):
		return "https://www." + u
	case !strings.HasPrefix(low, "http"):
		return "https://" + u
	}
	return u
}
