package sections

import (
	"regexp"
	"strings"
)

// Family is a group of synonymous headers for one kind of section, together
// with the headers that end its block.
type Family struct {
	Kind     Kind
	header   *regexp.Regexp
	boundary *regexp.Regexp
}

// NewFamily compiles a header family. headers and boundaries are regex
// alternatives matched case-insensitively at the start of a line.
func NewFamily(kind Kind, headers, boundaries []string) *Family {
	return &Family{
		Kind:     kind,
		header:   regexp.MustCompile(`(?im)^(` + strings.Join(headers, "|") + `)\b[:\-]?(.*)$`),
		boundary: regexp.MustCompile(`(?im)^(` + strings.Join(boundaries, "|") + `)\b`),
	}
}

// Blocks returns the body of every header occurrence in text. A body runs from
// the end of the header line to the next boundary line or the end of text.
// Text following the header on the same line is prepended to the body.
func (f *Family) Blocks(text string) []Block {
	var out []Block
	for _, m := range f.header.FindAllStringSubmatchIndex(text, -1) {
		start := m[1]
		end := len(text)
		if loc := f.boundary.FindStringIndex(text[start:]); loc != nil {
			end = start + loc[0]
		}
		body := text[start:end]
		if m[4] >= 0 && m[5] > m[4] {
			body = text[m[4]:m[5]] + "\n" + body
		}
		out = append(out, Block{Kind: f.Kind, Text: body, Start: start, End: end})
	}
	return out
}

// Header families used by the list extractors. Each boundary set is the
// common section vocabulary minus the family's own words.
var (
	EducationFamily = NewFamily(Education,
		[]string{"education", "academics", "academic qualifications", "qualifications", "educational background"},
		[]string{"experience", "work", "employment", "projects", `skills?`, `certifications?`, "licenses", "summary", "objective", "contact", `achievements?`},
	)
	SkillsFamily = NewFamily(Skills,
		[]string{`skills?`, `technical skills?`},
		[]string{"experience", "work", "employment", "projects", "education", `certifications?`, "licenses", "summary", "objective", "contact", `achievements?`},
	)
	CertificationsFamily = NewFamily(Certifications,
		[]string{`certificates?`, `certifications?`, `licenses?(?:\s*&\s*certifications?)?`, "licenses", "courses", "training",
			"professional development", "credentials", "badges", `awards\s*&\s*certifications?`},
		[]string{"experience", "work", "employment", "projects", "education", `skills?`, "summary", "objective", "contact", `achievements?`},
	)
	ProjectsFamily = NewFamily(Projects,
		[]string{`projects?`, `personal projects?`, `academic projects?`},
		[]string{"experience", "work", "employment", "education", `skills?`, `certifications?`, "licenses", "summary", "objective", "contact", `achievements?`},
	)
)
