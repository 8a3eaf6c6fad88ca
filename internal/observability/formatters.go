// Package observability renders analysis reports for terminal output.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a criterion progress bar
	barWidth = 20
)

// Printer writes human-readable reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintReport outputs the full analysis of one résumé.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Source.FileName != "" {
		sb.WriteString(fmt.Sprintf("File:    %s\n", report.Source.FileName))
	}
	sb.WriteString(fmt.Sprintf("Score:   %d/100 (%s)\n", report.Score, report.Rating))
	sb.WriteString(fmt.Sprintf("Field:   %s\n", report.Field))
	p.printBox("RESUME SCORE", sb.String())

	p.printInfo(report.Info)
	p.printBreakdown(report.Breakdown)
	p.printList("STRENGTHS", "✓", report.Strengths, "No notable strengths detected")
	p.printList("AREAS TO IMPROVE", "✗", report.Weaknesses, "No weaknesses detected")
	p.printList("TIPS", "•", report.Tips, "No tips")
	p.printList("FORMAT WARNINGS", "⚠", report.FormatWarnings, "No format issues detected")
	p.printRecommendations(report.Recommendations)
}

func (p *Printer) printInfo(info types.ExtractedInfo) {
	var sb strings.Builder
	for _, row := range []struct {
		label string
		value types.Optional[string]
	}{
		{"Name", info.Name},
		{"Email", info.Email},
		{"Phone", info.Phone},
		{"LinkedIn", info.LinkedIn},
		{"GitHub", info.GitHub},
		{"Portfolio", info.Portfolio},
	} {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", row.label+":", types.Display(row.value)))
	}
	for _, row := range []struct {
		label string
		value types.Optional[[]string]
	}{
		{"Education", info.Education},
		{"Skills", info.Skills},
		{"Certs", info.Certifications},
		{"Projects", info.Projects},
	} {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", row.label+":", summarize(types.DisplayList(row.value))))
	}
	p.printBox("EXTRACTED INFORMATION", sb.String())
}

func (p *Printer) printBreakdown(b types.ScoreBreakdown) {
	var sb strings.Builder
	for _, c := range b.Criteria() {
		sb.WriteString(fmt.Sprintf("%-26s %s %4.1f/%.0f\n", c.Name, bar(c.Value, c.Max), c.Value, c.Max))
	}
	d := b.ATSDetails
	sb.WriteString(fmt.Sprintf("\nATS: keywords %.1f/8, headers %.1f/4, format %d/3, contact %d/2, experience %d/3\n",
		d.KeywordMatch, d.SectionHeaders, d.FormatCompatibility, d.ContactInfo, d.ExperienceDetails))
	p.printBox("SCORE BREAKDOWN", sb.String())
}

func (p *Printer) printList(title, marker string, items []string, empty string) {
	if len(items) == 0 {
		p.printBox(title, empty)
		return
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, item))
	}
	p.printBox(title, sb.String())
}

func (p *Printer) printRecommendations(r types.Recommendations) {
	var sb strings.Builder
	for _, row := range []struct {
		label string
		items []string
	}{
		{"Skills to add", r.MissingSkills},
		{"Missing sections", r.MissingSections},
		{"Certifications", r.Certifications},
		{"Project ideas", r.ProjectIdeas},
		{"Courses", r.RelevantCourses},
	} {
		if len(row.items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", row.label, summarize(row.items)))
	}
	if sb.Len() == 0 {
		sb.WriteString("No recommendations")
	}
	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintComparison outputs a ranked table of several reports.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintComparison(reports []*types.Report) {
	if len(reports) == 0 {
		p.printBox("RESUME COMPARISON", "No reports to compare")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-3s %-26s %5s  %-22s %s\n", "#", "File", "Score", "Field", "Rating"))
	for i, r := range reports {
		name := r.Source.FileName
		if name == "" {
			name = r.ID.String()
		}
		sb.WriteString(fmt.Sprintf("%-3d %-26s %5d  %-22s %s\n",
			i+1, pad(name, 26), r.Score, pad(r.Field.String(), 22), r.Rating))
	}
	p.printBox("RESUME COMPARISON", sb.String())
}

// summarize joins up to maxItemsToShow items and notes how many were left out.
func summarize(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:maxItemsToShow], ", "), len(items)-maxItemsToShow)
}

func bar(value, limit float64) string {
	if limit <= 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := int(value / limit * barWidth)
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
