// Package scoring computes the weighted résumé quality score and ATS reports.
package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

var (
	// ActionVerbs are counted once each when they appear anywhere in the text.
	ActionVerbs = []string{
		"achieved", "developed", "implemented", "managed", "led", "created", "designed",
		"improved", "increased", "reduced", "optimized", "launched", "coordinated", "analyzed",
	}
	// MetricIndicators suggest quantified results.
	MetricIndicators = []string{"%", "percent", "improved", "reduced", "increased", "decreased", "by", "from", "to"}

	separatorChars = []string{"|", "•", "-"}
	specialChars   = []string{"[", "]", "{", "}", "|", "~", "^"}
	recentYears    = []string{"2024", "2023", "2022"}
	datedYears     = []string{"2024", "2023", "2022", "2021", "2020"}
)

const (
	conciseSentenceLen = 150
	longSentenceLen    = 200
)

// Signals are the document facts shared by the scorer and the diagnostics rules.
type Signals struct {
	Lower            string
	Length           int
	ActionVerbs      int
	Metrics          int
	HasBullets       bool
	HasSeparators    bool
	HasSpecialChars  bool
	ConciseSentences int
	LongSentences    int
	RecentYear       bool
	DatedYear        bool

	SkillsCount  int
	CertsCount   int
	HasEmail     bool
	HasPhone     bool
	HasLinkedIn  bool
	HasEducation bool
}

// NewSignals derives the shared facts for one document.
func NewSignals(text string, info types.ExtractedInfo) Signals {
	s := Signals{
		Lower:           strings.ToLower(text),
		Length:          utf8.RuneCountInString(text),
		HasBullets:      strings.Contains(text, "•") || strings.Contains(text, "- "),
		HasSeparators:   containsAny(text, separatorChars),
		HasSpecialChars: containsAny(text, specialChars),
		RecentYear:      containsAny(text, recentYears),
		DatedYear:       containsAny(text, datedYears),
		SkillsCount:     len(info.ValidSkills()),
		CertsCount:      len(info.ValidCertifications()),
		HasEmail:        info.Email.IsPresent(),
		HasPhone:        info.Phone.IsPresent(),
		HasLinkedIn:     info.LinkedIn.IsPresent(),
		HasEducation:    info.Education.IsPresent(),
	}
	s.ActionVerbs = countPresent(s.Lower, ActionVerbs)
	s.Metrics = countPresent(s.Lower, MetricIndicators)
	for _, sentence := range strings.Split(text, ". ") {
		n := utf8.RuneCountInString(sentence)
		if n < conciseSentenceLen {
			s.ConciseSentences++
		}
		if n > longSentenceLen {
			s.LongSentences++
		}
	}
	return s
}

// Mentions reports whether the lower-cased text contains word.
func (s Signals) Mentions(word string) bool {
	return strings.Contains(s.Lower, word)
}

// MentionsAny reports whether the lower-cased text contains any of words.
func (s Signals) MentionsAny(words ...string) bool {
	return containsAny(s.Lower, words)
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
