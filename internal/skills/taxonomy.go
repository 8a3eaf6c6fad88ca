// Package skills holds the field keyword taxonomy, field classification and
// field-specific recommendations.
package skills

import (
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// FieldKeywords pairs a field with its lower-case keyword phrases.
type FieldKeywords struct {
	Field    types.Field
	Keywords []string
}

// Taxonomy is an ordered, read-only mapping from fields to keywords.
type Taxonomy struct {
	fields []FieldKeywords
	index  map[types.Field]int
	all    []string
}

var defaultTaxonomy = NewTaxonomy()

// Default returns the shared taxonomy. It must not be modified.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// NewTaxonomy builds the taxonomy from the built-in keyword table.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{index: make(map[types.Field]int, len(fieldKeywords))}
	seen := make(map[string]bool)
	for i, fl := range fieldKeywords {
		kws := make([]string, len(fl.items))
		for j, kw := range fl.items {
			kws[j] = strings.ToLower(kw)
			if !seen[kws[j]] {
				seen[kws[j]] = true
				t.all = append(t.all, kws[j])
			}
		}
		t.fields = append(t.fields, FieldKeywords{Field: fl.field, Keywords: kws})
		t.index[fl.field] = i
	}
	return t
}

// Fields returns the fields in classification order.
func (t *Taxonomy) Fields() []types.Field {
	out := make([]types.Field, len(t.fields))
	for i, fk := range t.fields {
		out[i] = fk.Field
	}
	return out
}

// Keywords returns a copy of the keywords for field, or nil for an unknown field.
func (t *Taxonomy) Keywords(field types.Field) []string {
	i, ok := t.index[field]
	if !ok {
		return nil
	}
	return append([]string(nil), t.fields[i].Keywords...)
}

// IsFieldKeyword reports whether s, compared case-insensitively, is a keyword of field.
func (t *Taxonomy) IsFieldKeyword(field types.Field, s string) bool {
	i, ok := t.index[field]
	if !ok {
		return false
	}
	low := strings.ToLower(s)
	for _, kw := range t.fields[i].Keywords {
		if kw == low {
			return true
		}
	}
	return false
}

// AllKeywords returns every distinct keyword in table order.
func (t *Taxonomy) AllKeywords() []string {
	return append([]string(nil), t.all...)
}

// DetectField classifies free text. For each field it counts the keywords
// that occur as substrings of the lower-cased corpus. The strictly greatest
// count wins, earlier fields win ties, and a zero count yields General.
func (t *Taxonomy) DetectField(text string) types.Field {
	corpus := strings.ToLower(text)
	best := types.FieldGeneral
	bestCount := 0
	for _, fk := range t.fields {
		count := 0
		for _, kw := range fk.Keywords {
			if strings.Contains(corpus, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = fk.Field
		}
	}
	return best
}

// DetectFieldFromSkills classifies a list of extracted skills.
func (t *Taxonomy) DetectFieldFromSkills(skills []string) types.Field {
	return t.DetectField(strings.Join(skills, " "))
}

// DetectField classifies text with the default taxonomy.
func DetectField(text string) types.Field {
	return defaultTaxonomy.DetectField(text)
}

// DetectFieldFromSkills classifies skills with the default taxonomy.
func DetectFieldFromSkills(skills []string) types.Field {
	return defaultTaxonomy.DetectFieldFromSkills(skills)
}
