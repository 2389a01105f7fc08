package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resume-composer/internal/fallback"
	"resume-composer/pkg/utils"
)

type jobCodeOptions struct {
	name     string
	jobTitle string
	year     int
}

func newJobCodeCmd(_ *rootOptions) *cobra.Command {
	opts := &jobCodeOptions{}

	cmd := &cobra.Command{
		Use:   "jobcode",
		Short: "Print the job code stamped on fallback resumes",
		Long: `Print the job code built from the initials of the job title and the
candidate name plus the year, e.g. MLE-AYJ-2025.

Example:
  resumectl jobcode --job-title "Machine Learning Engineer" --name "Alice Y Jones"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year := opts.year
			if year == 0 {
				year = time.Now().Year()
			}
			code := fallback.JobCode(
				utils.GetStringOrDefault(opts.jobTitle, fallback.DefaultJobTitle),
				utils.GetStringOrDefault(opts.name, fallback.DefaultName),
				year,
			)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), code)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Candidate name")
	cmd.Flags().StringVar(&opts.jobTitle, "job-title", "", "Job title")
	cmd.Flags().IntVar(&opts.year, "year", 0, "Year (default current year)")

	return cmd
}
