package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	yearRe       = regexp.MustCompile(`(19|20)\d{2}`)
	wordYearRe   = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Item delimiters. Skills split on every list separator; certifications
	// keep hyphens so codes like AZ-900 survive; education and projects split
	// on line breaks and bullets only.
	skillDelims = regexp.MustCompile(`[\n\r,;\x{2022}\x{2023}\x{25E6}\x{2043}\-\x{2013}\x{2014}|/\x{00B7}\x{2219}\x{25AA}]+`)
	certDelims  = regexp.MustCompile(`[\n\r,;\x{2022}\x{2023}\x{25E6}\x{2043}|/\x{00B7}\x{2219}\x{25AA}]+`)
	lineDelims  = regexp.MustCompile(`[\n\r\x{2022}\x{2023}\x{25E6}\x{2043}\x{00B7}\x{2219}\x{25AA}]+`)
)

// collapseSpaces replaces whitespace runs with one space and trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// collapseRepeatedWords drops a word that repeats the previous one
// case-insensitively, e.g. "Intermediate Intermediate" becomes "Intermediate".
func collapseRepeatedWords(s string) string {
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := len(out); n > 0 && isWordToken(w) && strings.EqualFold(out[n-1], w) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func isWordToken(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}

// normalizeItem collapses whitespace, trims stray spaces and dots, and removes
// immediately repeated words.
func normalizeItem(s string) string {
	return collapseRepeatedWords(strings.Trim(collapseSpaces(s), " ."))
}

// dedupeFold keeps the first occurrence of each case-insensitive value.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it)
		if it == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

// normalizeList normalizes every item and dedupes the result.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeItem(it))
	}
	return dedupeFold(out)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
