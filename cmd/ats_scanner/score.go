package main

import (
	"fmt"
	"log"

	"github.com/jonathan/ats-scanner/internal/analysis"
	"github.com/jonathan/ats-scanner/internal/ingestion"
	"github.com/jonathan/ats-scanner/internal/types"
	"github.com/spf13/cobra"
)

// ScoreBelowThresholdError is returned when --fail-under is set and a resume scores lower.
type ScoreBelowThresholdError struct {
	Source    string
	Score     int
	Threshold int
}

func (e *ScoreBelowThresholdError) Error() string {
	return fmt.Sprintf("%s scored %d, below the threshold of %d", e.Source, e.Score, e.Threshold)
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var (
		resumes   []string
		failUnder int
	)

	cmd := &cobra.Command{
		Use:   "score [resume...]",
		Short: "Score one or more resumes on bullet strength and ATS formatting",
		Long: `Scores each resume from 0 to 100: base 50, minus formatting issues, plus a bonus for
strong bullets, minus a length penalty. Several resumes are scored concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := append(append([]string{}, resumes...), args...)
			if len(paths) == 0 {
				return fmt.Errorf("at least one resume is required (--resume or positional argument)")
			}
			stdinCount := 0
			for _, p := range paths {
				if p == ingestion.StdinPath {
					stdinCount++
				}
			}
			if stdinCount > 1 {
				return fmt.Errorf("stdin can only be read once")
			}

			env, err := opts.load(cmd)
			if err != nil {
				return err
			}

			docs := make([]analysis.Document, 0, len(paths))
			for _, p := range paths {
				doc, err := env.readDocument(p)
				if err != nil {
					return fmt.Errorf("failed to read resume: %w", err)
				}
				docs = append(docs, analysis.Document{Source: doc.Source, Text: doc.Text})
			}

			reports, err := env.analyzer.ScoreBatch(cmd.Context(), docs)
			if err != nil {
				return err
			}
			if env.cfg.Verbose {
				log.Printf("[VERBOSE] Scored %d resumes", len(reports))
			}

			var out any = reports
			if len(reports) == 1 {
				out = reports[0]
			}
			if err := env.render(out, func() {
				for _, r := range reports {
					env.printer.PrintScoreReport(r)
				}
			}); err != nil {
				return err
			}

			return checkThreshold(reports, failUnder)
		},
	}
	cmd.Flags().StringArrayVarP(&resumes, "resume", "r", nil, `Path to resume file ("-" for stdin); repeatable`)
	cmd.Flags().IntVar(&failUnder, "fail-under", 0, "Exit with an error if any resume scores below this value")
	return cmd
}

// checkThreshold returns an error for the first report scoring below threshold.
func checkThreshold(reports []*types.ScoreReport, threshold int) error {
	if threshold <= 0 {
		return nil
	}
	for _, r := range reports {
		if r.Score < threshold {
			return &ScoreBelowThresholdError{Source: r.Source, Score: r.Score, Threshold: threshold}
		}
	}
	return nil
}
