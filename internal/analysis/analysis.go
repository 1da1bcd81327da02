// Package analysis runs the scanner views: scoring a resume, matching a resume
// against a job description, and scanning a job description for keywords.
package analysis

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/bullets"
	"github.com/jonathan/ats-scanner/internal/keywords"
	"github.com/jonathan/ats-scanner/internal/lexicon"
	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/scoring"
	"github.com/jonathan/ats-scanner/internal/types"
	"github.com/jonathan/ats-scanner/internal/validation"
)

// Advice shown alongside results
const (
	TipRewriteWeakBullets = `Try using action + impact + metric. For example: "Led X to achieve Y percent improvement in Z."`
	TipUseMissingKeywords = "Consider rewriting weak bullets to include some of the missing keywords where they are true for your experience."
	TipCopyKeywords       = "You can copy these into your Skills section and bullet points where they truthfully match your experience."
)

// Analyzer runs every view against one lexicon and tokenizer mode.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	lex       *lexicon.Lexicon
	mode      parsing.Mode
	extractor *keywords.Extractor
}

// New creates an Analyzer. A nil lexicon uses lexicon.Default(); an invalid
// mode uses the alphanumeric tokenizer.
func New(lex *lexicon.Lexicon, mode parsing.Mode) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if !mode.Valid() {
		mode = parsing.ModeAlphanumeric
	}
	return &Analyzer{
		lex:       lex,
		mode:      mode,
		extractor: keywords.NewExtractor(lex, mode),
	}
}

// Lexicon returns the lexicon used by a
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// ScoreResume scores a resume on bullet strength and ATS formatting
func (a *Analyzer) ScoreResume(resume string) (*types.ScoreReport, error) {
	if err := requireText("resume", resume, "please paste your resume first"); err != nil {
		return nil, err
	}
	resume = strings.TrimSpace(resume)

	bulletReport := bullets.Analyze(a.lex, resume)
	formatReport := validation.CheckFormatting(resume)
	breakdown, score := scoring.Compute(bulletReport, formatReport)

	report := &types.ScoreReport{
		Score:      score,
		Breakdown:  breakdown,
		Bullets:    *bulletReport,
		Formatting: *formatReport,
	}
	if len(bulletReport.WeakExamples) > 0 {
		report.Tips = append(report.Tips, TipRewriteWeakBullets)
	}
	return report, nil
}

// TargetResume measures how well a resume covers the keywords of a job description
func (a *Analyzer) TargetResume(jobDescription, resume string) (*types.TargetReport, error) {
	if isBlank(jobDescription) || isBlank(resume) {
		field := "job_description"
		if !isBlank(jobDescription) {
			field = "resume"
		}
		return nil, &InputError{Field: field, Message: "please paste both the job description and your resume"}
	}

	kw := a.extractor.Extract(strings.TrimSpace(jobDescription))
	resume = strings.TrimSpace(resume)

	return &types.TargetReport{
		Keywords: *kw,
		Match:    *keywords.MatchWith(kw, resume, a.mode),
		Bullets:  *bullets.Analyze(a.lex, resume),
		Tips:     []string{TipUseMissingKeywords},
	}, nil
}

// ScanKeywords extracts categorized keywords from a job description
func (a *Analyzer) ScanKeywords(jobDescription string) (*types.KeywordReport, error) {
	if err := requireText("job_description", jobDescription, "please paste a job description first"); err != nil {
		return nil, err
	}

	return &types.KeywordReport{
		Keywords: *a.extractor.Extract(strings.TrimSpace(jobDescription)),
		Tips:     []string{TipCopyKeywords},
	}, nil
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
