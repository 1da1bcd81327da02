package fetch

import (
	"context"
	"log"
	"time"
)

// PostingOptions configures JobPosting.
type PostingOptions struct {
	HTTP           *Options
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
}

// Posting is the extracted text of a job posting.
type Posting struct {
	URL      string
	Board    Board
	Text     string
	Rendered bool
}

// renderFunc is swapped out in tests so no browser is needed.
var renderFunc = WithBrowser

// JobPosting fetches a posting, strips board noise and returns its description text.
// When UseBrowser is set and the static HTML yields too little text, the page is
// rendered with a headless browser; a failed render keeps the HTTP text.
func JobPosting(ctx context.Context, urlStr string, opts *PostingOptions) (*Posting, error) {
	if opts == nil {
		opts = &PostingOptions{}
	}

	board := DetectBoard(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s (board: %s)", urlStr, board)
	}

	result, err := URL(ctx, urlStr, opts.HTTP)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, board.ContentSelectors(), board.NoiseSelectors()...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	posting := &Posting{URL: urlStr, Board: board, Text: text}
	if !opts.UseBrowser || !ShouldUseBrowser(text) {
		return posting, nil
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] Content too short (%d chars < %d), rendering with browser", len(text), MinContentLength)
	}
	html, err := renderFunc(ctx, urlStr, opts.BrowserTimeout, opts.Verbose)
	if err != nil {
		if opts.Verbose {
			log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", err)
		}
		return posting, nil
	}
	rendered, err := ExtractMainText(html, board.ContentSelectors(), board.NoiseSelectors()...)
	if err != nil || len(rendered) <= len(text) {
		return posting, nil
	}
	posting.Text = rendered
	posting.Rendered = true
	return posting, nil
}
