package analysis

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scanner/internal/types"
)

// Document is a named resume text
type Document struct {
	Source string
	Text   string
}

// ScoreBatch scores every document concurrently. Results keep the input order.
// The first failing document cancels the rest and its error is returned.
func (a *Analyzer) ScoreBatch(ctx context.Context, docs []Document) ([]*types.ScoreReport, error) {
	reports := make([]*types.ScoreReport, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := a.ScoreResume(doc.Text)
			if err != nil {
				return fmt.Errorf("failed to score %s: %w", doc.Source, err)
			}
			report.Source = doc.Source
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
