package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"resume-composer/internal/api/validation"
	"resume-composer/internal/generator"
	"resume-composer/internal/llm"
	"resume-composer/pkg/models"
)

const offlineMessage = "Resume generated using fallback content"

type generateOptions struct {
	format  string
	output  string
	offline bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <request-file>",
		Short: "Generate a resume from a YAML request file",
		Long: `Generate a resume for the request described in a YAML file.

The request file carries the same fields as the web form:

  profile:
    name: Jane Doe
    email: jane@example.com
    job_title: Data Engineer
    years_of_experience: 4-5
    domain: Fintech
    education: BSc Computer Science
  job_description: ...
  work_responsibilities: ...
  skills: ...
  additional_notes: ...
  export_format: docx

With --offline the language model is skipped and fallback content is rendered.

Example:
  resumectl generate request.yaml
  resumectl generate request.yaml --offline --format html --output preview.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Export format overriding the request file (docx or html)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, '-' for stdout (default derived from the name)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Render fallback content without contacting the language model")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, path string) error {
	req, err := loadRequest(path)
	if err != nil {
		return err
	}
	if opts.format != "" {
		req.ExportFormat = models.ExportFormat(opts.format)
	}

	if err := validation.New().Struct(req); err != nil {
		return errors.Wrapf(err, "invalid request in %s", path)
	}

	var doc *models.RenderedDocument
	if opts.offline {
		doc, err = generateOffline(root, req)
	} else {
		doc, err = generateOnline(cmd.Context(), root, req)
	}
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, opts.output)
}

// loadRequest decodes a YAML request file, rejecting unknown keys
func loadRequest(path string) (models.GenerationRequest, error) {
	var req models.GenerationRequest

	f, err := os.Open(path)
	if err != nil {
		return req, errors.Wrapf(err, "failed to open request file %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrapf(err, "failed to parse request file %s", path)
	}
	return req, nil
}

func generateOffline(root *rootOptions, req models.GenerationRequest) (*models.RenderedDocument, error) {
	gen := generator.New(nil, generator.WithLogger(root.logger))

	root.logger.Info("Rendering fallback content", map[string]interface{}{
		"export_format": string(req.ExportFormat.Normalize()),
	})

	doc, err := gen.Render(gen.Synthesize(req), req.Profile, req.ExportFormat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render fallback resume")
	}
	doc.Fallback = true
	doc.Message = offlineMessage
	return doc, nil
}

func generateOnline(ctx context.Context, root *rootOptions, req models.GenerationRequest) (*models.RenderedDocument, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, root.cfg.Server.RequestTimeout)
	defer cancel()

	manager := llm.NewManager(root.cfg)
	if err := manager.Start(); err != nil {
		return nil, errors.Wrap(err, "failed to start language model provider")
	}
	defer func() { _ = manager.Stop() }()

	gen := generator.New(manager,
		generator.WithLogger(root.logger),
		generator.WithFallback(root.cfg.Generation.FallbackEnabled),
	)

	doc, err := gen.Generate(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate resume")
	}
	return doc, nil
}
