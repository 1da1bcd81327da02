// Package types provides type definitions for structured data used throughout the ats-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FormattingReport holds ATS formatting issues found in a resume
type FormattingReport struct {
	Issues    []string `json:"issues"`
	WordCount int      `json:"word_count"`
}

// HasIssues reports whether any formatting issue was found
func (f *FormattingReport) HasIssues() bool {
	return f != nil && len(f.Issues) > 0
}
