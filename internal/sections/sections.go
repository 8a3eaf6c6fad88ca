// Package sections locates résumé section headers and splits text into labeled blocks.
package sections

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Kind is a canonical section label.
type Kind string

// Canonical section kinds.
const (
	Experience     Kind = "experience"
	Education      Kind = "education"
	Skills         Kind = "skills"
	Projects       Kind = "projects"
	Certifications Kind = "certifications"
	Contact        Kind = "contact"
	Objective      Kind = "objective"
	Declaration    Kind = "declaration"
)

// similarityThreshold is the minimum ratio for a heading to count as a synonym.
const similarityThreshold = 0.8

// maxHeadingWords bounds how long a line may be and still be read as a heading.
const maxHeadingWords = 5

type synonymSet struct {
	kind     Kind
	variants []string
}

var headerSynonyms = []synonymSet{
	{Experience, []string{"experience", "work experience", "employment", "work history", "professional experience", "career", "employment history"}},
	{Education, []string{"education", "academic", "academics", "qualifications", "academic background", "educational background"}},
	{Skills, []string{"skills", "technical skills", "competencies", "expertise", "technologies", "tools", "programming languages"}},
	{Projects, []string{"projects", "project work", "portfolio", "achievements", "key projects", "work samples"}},
	{Certifications, []string{"certifications", "certificates", "credentials", "accreditations", "professional certifications"}},
	{Contact, []string{"contact", "contact information", "personal information", "details", "contact details"}},
	{Objective, []string{"objective", "career objective", "summary", "profile", "personal statement", "career summary"}},
	{Declaration, []string{"declaration", "statement", "affirmation", "disclaimer"}},
}

// Normalize maps a heading to its canonical kind using fuzzy matching.
// The second result is false when the heading matches no known section.
func Normalize(heading string) (Kind, bool) {
	h := strings.ToLower(strings.TrimSpace(heading))
	if h == "" {
		return "", false
	}
	for _, set := range headerSynonyms {
		for _, v := range set.variants {
			if Similarity(h, v) > similarityThreshold {
				return set.kind, true
			}
		}
	}
	return "", false
}

// Similarity returns the character-level similarity ratio of a and b in [0, 1].
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Block is a labeled span of the source text.
type Block struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// Segment labels the whole document. A short line whose text normalizes to a
// known kind opens a block that runs until the next such line.
// Text before the first heading is not returned.
func Segment(text string) []Block {
	var blocks []Block
	var current *Block

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		lineStart := offset
		offset += len(line)

		candidate := strings.TrimSuffix(strings.TrimSpace(line), ":")
		if candidate == "" || len(strings.Fields(candidate)) > maxHeadingWords {
			continue
		}
		kind, ok := Normalize(candidate)
		if !ok {
			continue
		}
		if current != nil {
			current.End = lineStart
			current.Text = text[current.Start:current.End]
			blocks = append(blocks, *current)
		}
		current = &Block{Kind: kind, Start: offset}
	}
	if current != nil {
		current.End = len(text)
		current.Text = text[current.Start:current.End]
		blocks = append(blocks, *current)
	}
	return blocks
}
