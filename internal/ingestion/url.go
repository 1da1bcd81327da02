package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/ats-scanner/internal/fetch"
)

// ReadURL fetches a job posting and returns its cleaned description text.
func ReadURL(ctx context.Context, urlStr string, opts *fetch.PostingOptions) (*Document, error) {
	posting, err := fetch.JobPosting(ctx, urlStr, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return &Document{
		Source: urlStr,
		Format: FormatHTML,
		Text:   CleanText(posting.Text),
		Bytes:  len(posting.Text),
	}, nil
}
