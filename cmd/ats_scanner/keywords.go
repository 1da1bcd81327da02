package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeywordsCmd(opts *rootOptions) *cobra.Command {
	var jd jobFlags

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract tools, skills and domain keywords from a job description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load(cmd)
			if err != nil {
				return err
			}

			doc, err := env.readJobDescription(cmd.Context(), jd.path, jd.url, jd.useBrowser)
			if err != nil {
				return fmt.Errorf("failed to read job description: %w", err)
			}

			report, err := env.analyzer.ScanKeywords(doc.Text)
			if err != nil {
				return err
			}
			return env.render(report, func() { env.printer.PrintKeywordReport(report) })
		},
	}
	jd.register(cmd)
	return cmd
}
