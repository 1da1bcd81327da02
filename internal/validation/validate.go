// Package validation checks resume text for ATS formatting problems.
package validation

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/types"
)

// MaxWords is the word count above which a resume is flagged as too long
const MaxWords = 900

// Issue messages reported by CheckFormatting
const (
	IssueMissingExperience = "Could not find an Experience section. Use a clear heading like Experience or Work Experience."
	IssueMissingEducation  = "Could not find an Education section. Use a clear heading like Education."
	IssueMissingSkills     = "Could not find a Skills section. Consider adding a Skills section with tools and tech."
	IssueTooLong           = "Resume may be too long. Try to keep it closer to one page for early / mid level roles."
	IssueMissingEmail      = "Email address not detected. Make sure your contact info is in plain text."
)

// sectionChecks lists the markers every resume is expected to contain, in report order
var sectionChecks = []struct {
	marker string
	issue  string
}{
	{"experience", IssueMissingExperience},
	{"education", IssueMissingEducation},
	{"skills", IssueMissingSkills},
}

// CheckFormatting scans resume text for missing sections, excessive length and
// missing contact details. Issues are reported in a fixed order.
func CheckFormatting(resumeText string) *types.FormattingReport {
	report := &types.FormattingReport{Issues: []string{}}

	// 1. Section headings (case-insensitive substring)
	lower := strings.ToLower(resumeText)
	for _, check := range sectionChecks {
		if !strings.Contains(lower, check.marker) {
			report.Issues = append(report.Issues, check.issue)
		}
	}

	// 2. Length, counted with digits so phone numbers and metrics count
	report.WordCount = parsing.WordCount(resumeText)
	if report.WordCount > MaxWords {
		report.Issues = append(report.Issues, IssueTooLong)
	}

	// 3. Contact details
	if !strings.Contains(resumeText, "@") {
		report.Issues = append(report.Issues, IssueMissingEmail)
	}

	return report
}
