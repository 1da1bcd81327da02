package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/ats-scanner/internal/analysis"
	"github.com/jonathan/ats-scanner/internal/config"
	"github.com/jonathan/ats-scanner/internal/fetch"
	"github.com/jonathan/ats-scanner/internal/ingestion"
	"github.com/jonathan/ats-scanner/internal/lexicon"
	"github.com/jonathan/ats-scanner/internal/observability"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	lexiconPath string
	format      string
	tokenizer   string
	maxBytes    int64
	verbose     bool
}

// environment is everything a subcommand needs once configuration is resolved.
type environment struct {
	cfg      config.Config
	analyzer *analysis.Analyzer
	printer  *observability.Printer
	cmd      *cobra.Command
}

// flagChanged reports whether a local or inherited flag was set on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// resolveConfig layers defaults, the config file, ATS_* env vars and flags.
func (o *rootOptions) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var fileCfg config.Config
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}
	if err := fileCfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	cfg := fileCfg.MergeWithDefaults(config.Defaults())

	if flagChanged(cmd, "lexicon") {
		cfg.Lexicon = o.lexiconPath
	}
	if flagChanged(cmd, "format") {
		cfg.Format = o.format
	}
	if flagChanged(cmd, "tokenizer") {
		cfg.Tokenizer = o.tokenizer
	}
	if flagChanged(cmd, "max-bytes") {
		cfg.MaxUploadBytes = o.maxBytes
	}
	if o.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// load resolves configuration and builds the analyzer.
func (o *rootOptions) load(cmd *cobra.Command) (*environment, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	lex := lexicon.Default()
	if cfg.Lexicon != "" {
		lex, err = lexicon.LoadFile(cfg.Lexicon)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		if cfg.Verbose {
			log.Printf("[VERBOSE] Loaded lexicon override from %s", cfg.Lexicon)
		}
	}

	return &environment{
		cfg:      cfg,
		analyzer: analysis.New(lex, cfg.TokenizerMode()),
		printer:  observability.NewPrinter(cmd.OutOrStdout()),
		cmd:      cmd,
	}, nil
}

// readDocument reads a file, or the command's stdin when path is "-".
func (e *environment) readDocument(path string) (*ingestion.Document, error) {
	var (
		doc *ingestion.Document
		err error
	)
	if path == ingestion.StdinPath {
		doc, err = ingestion.ReadReader(e.cmd.InOrStdin(), "stdin", e.cfg.MaxUploadBytes)
	} else {
		doc, err = ingestion.ReadFile(path, e.cfg.MaxUploadBytes)
	}
	if err != nil {
		return nil, err
	}
	if e.cfg.Verbose {
		log.Printf("[VERBOSE] Read %s: %d bytes (%s), %d chars after cleaning", doc.Source, doc.Bytes, doc.Format, len(doc.Text))
	}
	return doc, nil
}

// readJobDescription reads the job description from a file or a posting URL.
func (e *environment) readJobDescription(ctx context.Context, path, url string, useBrowser bool) (*ingestion.Document, error) {
	if url == "" {
		return e.readDocument(path)
	}
	return ingestion.ReadURL(ctx, url, &fetch.PostingOptions{
		UseBrowser: useBrowser || e.cfg.UseBrowser,
		Verbose:    e.cfg.Verbose,
	})
}

// render writes v as JSON or through the text printer.
func (e *environment) render(v any, text func()) error {
	if e.cfg.Format == config.FormatJSON {
		return e.printer.PrintJSON(v)
	}
	text()
	return nil
}

// jobFlags are the job description source flags shared by keywords and target.
type jobFlags struct {
	path       string
	url        string
	useBrowser bool
}

func (j *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&j.path, "jd", "j", "", `Path to job description file ("-" for stdin, .html supported)`)
	cmd.Flags().StringVar(&j.url, "jd-url", "", "URL of a job posting to fetch")
	cmd.Flags().BoolVar(&j.useBrowser, "use-browser", false, "Render JavaScript job boards with headless Chrome when needed")
	cmd.MarkFlagsMutuallyExclusive("jd", "jd-url")
	cmd.MarkFlagsOneRequired("jd", "jd-url")
}
