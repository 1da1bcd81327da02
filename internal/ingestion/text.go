// Package ingestion reads resumes and job descriptions from files, stdin and URLs
// and returns cleaned plain text ready for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe  = regexp.MustCompile(`[ \t]+`)
	blankLinesRe  = regexp.MustCompile(`\n\n\n+`)
	lineEndingsRe = regexp.MustCompile(`\r\n?`)
)

// CleanText normalizes line endings and whitespace while preserving line structure.
// Bullet markers and indentation survive so bullet analysis still sees them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = lineEndingsRe.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner runs of spaces and tabs, keeping leading indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}
	indent := len(line) - len(trimmed)
	return strings.Repeat(" ", indent) + innerSpaceRe.ReplaceAllString(trimmed, " ")
}
