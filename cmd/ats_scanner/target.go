package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTargetCmd(opts *rootOptions) *cobra.Command {
	var (
		jd     jobFlags
		resume string
	)

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Check how well a resume covers a job description's keywords",
		Long: `Extracts keywords from the job description, reports which ones appear in the resume,
and summarizes the resume's bullet strength.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if resume == "-" && jd.path == "-" {
				return fmt.Errorf("--jd and --resume cannot both read stdin")
			}

			env, err := opts.load(cmd)
			if err != nil {
				return err
			}

			jdDoc, err := env.readJobDescription(cmd.Context(), jd.path, jd.url, jd.useBrowser)
			if err != nil {
				return fmt.Errorf("failed to read job description: %w", err)
			}
			resumeDoc, err := env.readDocument(resume)
			if err != nil {
				return fmt.Errorf("failed to read resume: %w", err)
			}

			report, err := env.analyzer.TargetResume(jdDoc.Text, resumeDoc.Text)
			if err != nil {
				return err
			}
			return env.render(report, func() { env.printer.PrintTargetReport(report) })
		},
	}
	jd.register(cmd)
	cmd.Flags().StringVarP(&resume, "resume", "r", "", `Path to resume file ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}
