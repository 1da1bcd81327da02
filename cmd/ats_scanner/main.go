// Package main provides the ats_scanner command: keyword scanning, resume targeting
// and resume scoring from the terminal, plus an HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ats_scanner",
		Short: "ATS keyword and resume scanner",
		Long: `ats_scanner extracts keywords from job descriptions, checks a resume's keyword coverage
against a posting, and scores a resume on bullet strength and ATS-friendly formatting.

Configuration is layered: defaults, then --config file, then ATS_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config.json file")
	flags.StringVar(&opts.lexiconPath, "lexicon", "", "Path to a lexicon override JSON file")
	flags.StringVar(&opts.format, "format", "", "Output format: text or json")
	flags.StringVar(&opts.tokenizer, "tokenizer", "", "Tokenizer: alnum (letters and digits) or letters")
	flags.Int64Var(&opts.maxBytes, "max-bytes", 0, "Maximum size of each input document in bytes (default 2MB)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(
		newKeywordsCmd(opts),
		newTargetCmd(opts),
		newScoreCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
