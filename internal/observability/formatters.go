// Package observability renders analysis reports for the terminal.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 12
)

// Printer writes human-readable reports
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// writeList writes a labelled bullet list, eliding entries past maxItemsToShow.
func writeList(sb *strings.Builder, label string, items []string, empty string) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(items)))
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", empty))
		return
	}
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func writeKeywords(sb *strings.Builder, kw types.KeywordResult) {
	writeList(sb, "Tools", kw.Tools, "none found")
	sb.WriteString("\n")
	writeList(sb, "Skills", kw.Skills, "none found")
	sb.WriteString("\n")
	writeList(sb, "Domain", kw.Domain, "none found")
}

func writeBullets(sb *strings.Builder, bullets types.BulletReport) {
	sb.WriteString(fmt.Sprintf("Bullets:  %d total, %d strong, %d weak\n", bullets.Total, bullets.Strong, bullets.Weak))
	for _, ex := range bullets.WeakExamples {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", ex))
	}
}

func writeTips(sb *strings.Builder, tips []string) {
	if len(tips) == 0 {
		return
	}
	sb.WriteString("\nTips:\n")
	for _, tip := range tips {
		sb.WriteString(fmt.Sprintf("  → %s\n", tip))
	}
}

// PrintKeywordReport outputs the categorized keywords of a job description.
func (p *Printer) PrintKeywordReport(report *types.KeywordReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	writeKeywords(&sb, report.Keywords)
	writeTips(&sb, report.Tips)

	p.printBox("JOB DESCRIPTION KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTargetReport outputs keyword coverage of a resume against a job description.
func (p *Printer) PrintTargetReport(report *types.TargetReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keyword match: %d%%\n\n", report.Match.Score))
	writeList(&sb, "Matched", report.Match.Matched, "no keywords matched")
	sb.WriteString("\n")
	writeList(&sb, "Missing", report.Match.Missing, "nothing missing")
	sb.WriteString("\n")
	writeBullets(&sb, report.Bullets)
	writeTips(&sb, report.Tips)

	p.printBox("TARGETED RESUME MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the self-score of a resume with its breakdown.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	title := "RESUME SCORE"
	if report.Source != "" {
		title = fmt.Sprintf("RESUME SCORE: %s", report.Source)
	}

	b := report.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", report.Score))
	sb.WriteString(fmt.Sprintf("  base %d, sections -%d, bullets +%d, length -%d\n\n",
		b.Base, b.SectionPenalty, b.BulletBonus, b.LengthPenalty))
	writeBullets(&sb, report.Bullets)
	sb.WriteString(fmt.Sprintf("\nWords:    %d\n", report.Formatting.WordCount))
	if report.Formatting.HasIssues() {
		sb.WriteString("Formatting issues:\n")
		for _, issue := range report.Formatting.Issues {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
	} else {
		sb.WriteString("✅ No formatting issues\n")
	}
	writeTips(&sb, report.Tips)

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJSON writes v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
