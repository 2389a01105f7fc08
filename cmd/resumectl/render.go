package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-composer/internal/generator"
	"resume-composer/pkg/models"
)

type renderOptions struct {
	format  string
	output  string
	profile models.CandidateProfile
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <resume-text-file>",
		Short: "Render existing resume text into a document",
		Long: `Render plain resume text into a Word document or an HTML preview
without contacting a language model.

Example:
  resumectl render resume.txt --name "Jane Doe" --job-title "Data Engineer"
  resumectl render resume.txt --format html --output -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(models.FormatDocx), "Export format (docx or html)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, '-' for stdout (default derived from the name)")
	cmd.Flags().StringVar(&opts.profile.Name, "name", "", "Candidate name shown in the header")
	cmd.Flags().StringVar(&opts.profile.Email, "email", "", "Candidate email shown in the header")
	cmd.Flags().StringVar(&opts.profile.JobTitle, "job-title", "", "Candidate job title shown in the header")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read resume text from %s", path)
	}

	gen := generator.New(nil, generator.WithLogger(root.logger))
	doc, err := gen.Render(string(raw), opts.profile, models.ExportFormat(opts.format))
	if err != nil {
		return errors.Wrap(err, "failed to render resume")
	}

	return writeDocument(cmd, doc, opts.output)
}

// writeDocument stores the rendered document at output, or at its download filename
// when output is empty. '-' writes the bytes to stdout.
func writeDocument(cmd *cobra.Command, doc *models.RenderedDocument, output string) error {
	if output == "-" {
		_, err := cmd.OutOrStdout().Write(doc.Content)
		return errors.Wrap(err, "failed to write document to stdout")
	}

	if output == "" {
		output = doc.Filename
	}

	if err := os.WriteFile(output, doc.Content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d bytes)\n", doc.Message, output, len(doc.Content))
	return nil
}
